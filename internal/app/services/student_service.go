package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/pkg/validation"
)

// StudentService handles student record operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	classRepo   *repositories.ClassRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	classRepo *repositories.ClassRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// RegisterStudent creates a student record and adds it to the class roster
func (s *StudentService) RegisterStudent(ctx context.Context, student *models.Student) error {
	nameValid := validation.NewStringValidation(strings.TrimSpace(student.Name)).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameValid {
		return fmt.Errorf("%w: student name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	rollValid := validation.NewStringValidation(student.RollNumber).
		WithPattern(validation.CompiledPatterns.RollNumber).
		Validate()
	if !rollValid {
		return fmt.Errorf("%w: roll number must look like FA22-BCS-001", apperrors.ErrValidationFailed)
	}

	if _, err := s.classRepo.GetByID(ctx, student.ClassID); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	if err := s.classRepo.AddStudent(ctx, student.ClassID, student.ID); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", student.ID).Str("rollNumber", student.RollNumber).
		Str("classId", student.ClassID).Msg("Student registered")
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudentByRollNumber retrieves a student by roll number
func (s *StudentService) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return s.studentRepo.GetByRollNumber(ctx, rollNumber)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentsByClass retrieves all students of a class
func (s *StudentService) GetStudentsByClass(ctx context.Context, classID string) ([]*models.Student, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByClass(ctx, classID)
}

// DeleteStudent removes a student record and its roster entry
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.classRepo.RemoveStudent(ctx, student.ClassID, student.ID); err != nil {
		return err
	}

	return s.studentRepo.Delete(ctx, id)
}
