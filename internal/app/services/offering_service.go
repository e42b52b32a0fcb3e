package services

import (
	"context"
	"sync"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
)

// OfferingService handles course-to-instructor-and-class assignments
type OfferingService struct {
	offeringRepo   *repositories.OfferingRepository
	courseRepo     *repositories.CourseRepository
	instructorRepo *repositories.InstructorRepository
	classRepo      *repositories.ClassRepository
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(
	offeringRepo *repositories.OfferingRepository,
	courseRepo *repositories.CourseRepository,
	instructorRepo *repositories.InstructorRepository,
	classRepo *repositories.ClassRepository,
) *OfferingService {
	return &OfferingService{
		offeringRepo:   offeringRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		classRepo:      classRepo,
	}
}

// AssignCourse creates an offering after verifying the course, instructor
// and class all exist. The same tuple cannot be assigned twice.
func (s *OfferingService) AssignCourse(ctx context.Context, offering *models.Offering) error {
	if _, err := s.courseRepo.GetByID(ctx, offering.CourseID); err != nil {
		return err
	}
	if _, err := s.instructorRepo.GetByID(ctx, offering.InstructorID); err != nil {
		return err
	}
	if _, err := s.classRepo.GetByID(ctx, offering.ClassID); err != nil {
		return err
	}

	return s.offeringRepo.Create(ctx, offering)
}

// GetOfferingByID retrieves an offering with its relations populated
func (s *OfferingService) GetOfferingByID(ctx context.Context, id string) (*models.Offering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.populateRelations(ctx, offering)
	return offering, nil
}

// GetAllOfferings retrieves all offerings with relations populated
func (s *OfferingService) GetAllOfferings(ctx context.Context) ([]*models.Offering, error) {
	offerings, err := s.offeringRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.populateAll(ctx, offerings)
	return offerings, nil
}

// GetOfferingsByInstructor retrieves the offerings an instructor teaches
func (s *OfferingService) GetOfferingsByInstructor(ctx context.Context, instructorID string) ([]*models.Offering, error) {
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		return nil, err
	}

	offerings, err := s.offeringRepo.GetByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	s.populateAll(ctx, offerings)
	return offerings, nil
}

// GetOfferingsByClass retrieves the offerings assigned to a class
func (s *OfferingService) GetOfferingsByClass(ctx context.Context, classID string) ([]*models.Offering, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}

	offerings, err := s.offeringRepo.GetByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	s.populateAll(ctx, offerings)
	return offerings, nil
}

// DeleteOffering removes an offering
func (s *OfferingService) DeleteOffering(ctx context.Context, id string) error {
	if _, err := s.offeringRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.offeringRepo.Delete(ctx, id)
}

// populateRelations resolves the course, instructor and class of an
// offering. Lookup failures leave the relation nil rather than failing the
// whole read.
func (s *OfferingService) populateRelations(ctx context.Context, offering *models.Offering) {
	if course, err := s.courseRepo.GetByID(ctx, offering.CourseID); err == nil {
		offering.Course = course
	}
	if instructor, err := s.instructorRepo.GetByID(ctx, offering.InstructorID); err == nil {
		offering.Instructor = instructor
	}
	if class, err := s.classRepo.GetByID(ctx, offering.ClassID); err == nil {
		offering.Class = class
	}
}

func (s *OfferingService) populateAll(ctx context.Context, offerings []*models.Offering) {
	var wg sync.WaitGroup
	for _, offering := range offerings {
		wg.Add(1)
		go func(o *models.Offering) {
			defer wg.Done()
			s.populateRelations(ctx, o)
		}(offering)
	}
	wg.Wait()
}
