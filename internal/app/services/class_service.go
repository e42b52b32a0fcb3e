package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

// ClassService handles class cohort operations
type ClassService struct {
	classRepo      *repositories.ClassRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewClassService creates a new class service instance
func NewClassService(
	classRepo *repositories.ClassRepository,
	departmentRepo *repositories.DepartmentRepository,
) *ClassService {
	return &ClassService{
		classRepo:      classRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateClass creates a new class under a department. The class name is
// prefixed with the department abbreviation when it is not already.
func (s *ClassService) CreateClass(ctx context.Context, class *models.Class) error {
	if strings.TrimSpace(class.Name) == "" {
		return fmt.Errorf("%w: class name cannot be empty", apperrors.ErrValidationFailed)
	}

	department, err := s.departmentRepo.GetByID(ctx, class.DepartmentID)
	if err != nil {
		return err
	}

	prefix := department.Abbreviation + "-"
	if !strings.HasPrefix(class.Name, prefix) {
		class.Name = prefix + class.Name
	}

	return s.classRepo.Create(ctx, class)
}

// GetClassByID retrieves a class by ID
func (s *ClassService) GetClassByID(ctx context.Context, id string) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetAllClasses retrieves all classes
func (s *ClassService) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.GetAll(ctx)
}

// GetClassesByDepartment retrieves all classes of a department
func (s *ClassService) GetClassesByDepartment(ctx context.Context, departmentID string) ([]*models.Class, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.classRepo.GetByDepartment(ctx, departmentID)
}
