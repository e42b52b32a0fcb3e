package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/pkg/validation"
)

// CourseService handles catalog course operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse creates a new catalog course. Every listed prerequisite must
// be an existing catalog course.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(ctx, course); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all catalog courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// UpdateCourse updates an existing catalog course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(ctx, course); err != nil {
		return err
	}
	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse deletes a catalog course
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) validateCourse(ctx context.Context, course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	creditsValid := validation.NewNumericValidation(course.CreditHours).
		WithMin(validation.CreditHoursMin).
		WithMax(validation.CreditHoursMax).
		Validate()
	if !creditsValid {
		return fmt.Errorf("%w: credit hours must be between %d and %d",
			apperrors.ErrValidationFailed, validation.CreditHoursMin, validation.CreditHoursMax)
	}
	if course.PreRequisites == nil {
		course.PreRequisites = []string{}
	}

	for _, prereqID := range course.PreRequisites {
		if prereqID == course.ID && course.ID != "" {
			return fmt.Errorf("%w: a course cannot be its own prerequisite", apperrors.ErrValidationFailed)
		}
		if _, err := s.courseRepo.GetByID(ctx, prereqID); err != nil {
			return fmt.Errorf("%w: prerequisite %s does not exist", apperrors.ErrValidationFailed, prereqID)
		}
	}

	return nil
}
