package services

import (
	"context"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
)

// InstructorService handles instructor-related operations
type InstructorService struct {
	instructorRepo *repositories.InstructorRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(
	instructorRepo *repositories.InstructorRepository,
	departmentRepo *repositories.DepartmentRepository,
) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
		departmentRepo: departmentRepo,
	}
}

// GetInstructorByID retrieves an instructor with its department populated
func (s *InstructorService) GetInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if department, err := s.departmentRepo.GetByID(ctx, instructor.DepartmentID); err == nil {
		instructor.Department = department
	}

	return instructor, nil
}

// GetAllInstructors retrieves all instructors
func (s *InstructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	return s.instructorRepo.GetAll(ctx)
}

// GetInstructorsByDepartment retrieves all instructors of a department
func (s *InstructorService) GetInstructorsByDepartment(ctx context.Context, departmentID string) ([]*models.Instructor, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.instructorRepo.GetByDepartment(ctx, departmentID)
}
