package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// EnrollmentService drives the apply/approve/disapprove workflow. An
// offering ID lives in at most one of a student's course sets; every
// transition between sets is a single conditional write on the student
// document.
type EnrollmentService struct {
	studentRepo  *repositories.StudentRepository
	offeringRepo *repositories.OfferingRepository
	courseRepo   *repositories.CourseRepository
	logger       zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	studentRepo *repositories.StudentRepository,
	offeringRepo *repositories.OfferingRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		studentRepo:  studentRepo,
		offeringRepo: offeringRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

// Apply puts an offering into the student's applied set. Applying for an
// offering already held in any set is a no-op, not an error.
func (s *EnrollmentService) Apply(ctx context.Context, studentID, offeringID string) error {
	if _, err := s.offeringRepo.GetByID(ctx, offeringID); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if student.HasOffering(offeringID) {
		return nil
	}

	return s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayUnion("enrolledCourses", offeringID),
	})
}

// CheckPrerequisites reports whether every prerequisite of the offering's
// course appears in the student's completed set. A course without
// prerequisites is always satisfied.
func (s *EnrollmentService) CheckPrerequisites(ctx context.Context, student *models.Student, offeringID string) (bool, error) {
	offering, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		return false, err
	}

	course, err := s.courseRepo.GetByID(ctx, offering.CourseID)
	if err != nil {
		return false, err
	}

	for _, prereqID := range course.PreRequisites {
		if !student.HasCompleted(prereqID) {
			return false, nil
		}
	}
	return true, nil
}

// Approve moves an offering from the student's applied set to the current
// set. The offering must be in the applied set and the course's
// prerequisites must be satisfied. Both set changes land in one write so
// the offering never appears in both sets.
func (s *EnrollmentService) Approve(ctx context.Context, studentID, offeringID string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !student.HasEnrolled(offeringID) {
		return apperrors.ErrNotEnrolled
	}

	satisfied, err := s.CheckPrerequisites(ctx, student, offeringID)
	if err != nil {
		return err
	}
	if !satisfied {
		return apperrors.ErrPrerequisitesNotMet
	}

	err = s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayRemove("enrolledCourses", offeringID),
		store.ArrayUnion("currentCourses", offeringID),
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("studentId", studentID).Str("offeringId", offeringID).
		Msg("Enrollment approved")
	return nil
}

// Disapprove removes an offering from the student's applied set. It is only
// permitted when the prerequisites are not satisfied; an eligible
// application cannot be rejected.
func (s *EnrollmentService) Disapprove(ctx context.Context, studentID, offeringID string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !student.HasEnrolled(offeringID) {
		return apperrors.ErrNotEnrolled
	}

	satisfied, err := s.CheckPrerequisites(ctx, student, offeringID)
	if err != nil {
		return err
	}
	if satisfied {
		return apperrors.ErrPrerequisitesSatisfied
	}

	err = s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayRemove("enrolledCourses", offeringID),
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("studentId", studentID).Str("offeringId", offeringID).
		Msg("Enrollment disapproved")
	return nil
}

// Application is one pending enrollment with the offering resolved and the
// prerequisite check already evaluated.
type Application struct {
	Offering               *models.Offering
	PrerequisitesSatisfied bool
}

// ListApplications resolves the student's applied set into offerings with
// their prerequisite status, for the approval screen.
func (s *EnrollmentService) ListApplications(ctx context.Context, studentID string) ([]Application, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	applications := make([]Application, len(student.EnrolledCourses))
	errs := make([]error, len(student.EnrolledCourses))

	var wg sync.WaitGroup
	for i, offeringID := range student.EnrolledCourses {
		wg.Add(1)
		go func(i int, offeringID string) {
			defer wg.Done()

			offering, err := s.offeringRepo.GetByID(ctx, offeringID)
			if err != nil {
				errs[i] = err
				return
			}
			if course, err := s.courseRepo.GetByID(ctx, offering.CourseID); err == nil {
				offering.Course = course
			}

			satisfied, err := s.CheckPrerequisites(ctx, student, offeringID)
			if err != nil {
				errs[i] = err
				return
			}

			applications[i] = Application{Offering: offering, PrerequisitesSatisfied: satisfied}
		}(i, offeringID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return applications, nil
}

// ListCurrent resolves the student's current set into offerings
func (s *EnrollmentService) ListCurrent(ctx context.Context, studentID string) ([]*models.Offering, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	offerings := make([]*models.Offering, 0, len(student.CurrentCourses))
	for _, offeringID := range student.CurrentCourses {
		offering, err := s.offeringRepo.GetByID(ctx, offeringID)
		if err != nil {
			return nil, err
		}
		if course, err := s.courseRepo.GetByID(ctx, offering.CourseID); err == nil {
			offering.Course = course
		}
		offerings = append(offerings, offering)
	}

	return offerings, nil
}
