package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// InstructorRepository handles document-store operations for instructors
type InstructorRepository struct {
	store store.Store
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(st store.Store) *InstructorRepository {
	return &InstructorRepository{store: st}
}

// Create creates a new instructor document. The ID must be the ID of the
// instructor's user account.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	if err := r.store.Create(ctx, CollectionInstructors, instructor.ID, instructor); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}
	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	doc, err := r.store.Get(ctx, CollectionInstructors, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	var instructor models.Instructor
	if err := decodeDocument(doc, &instructor); err != nil {
		return nil, err
	}
	instructor.ID = doc.ID

	return &instructor, nil
}

// GetAll retrieves all instructors
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	return r.query(ctx)
}

// GetByDepartment retrieves all instructors of a department
func (r *InstructorRepository) GetByDepartment(ctx context.Context, departmentID string) ([]*models.Instructor, error) {
	return r.query(ctx, store.Where("departmentId", departmentID))
}

func (r *InstructorRepository) query(ctx context.Context, filters ...store.Filter) ([]*models.Instructor, error) {
	docs, err := r.store.Query(ctx, CollectionInstructors, filters...)
	if err != nil {
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}

	instructors := make([]*models.Instructor, 0, len(docs))
	for i := range docs {
		var instructor models.Instructor
		if err := decodeDocument(&docs[i], &instructor); err != nil {
			return nil, err
		}
		instructor.ID = docs[i].ID
		instructors = append(instructors, &instructor)
	}

	return instructors, nil
}
