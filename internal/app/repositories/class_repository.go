package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// ClassRepository handles document-store operations for classes
type ClassRepository struct {
	store store.Store
}

// NewClassRepository creates a new class repository
func NewClassRepository(st store.Store) *ClassRepository {
	return &ClassRepository{store: st}
}

// Create creates a new class document
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.StudentsOfClass == nil {
		class.StudentsOfClass = []string{}
	}

	if err := r.store.Create(ctx, CollectionClasses, class.ID, class); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	doc, err := r.store.Get(ctx, CollectionClasses, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	var class models.Class
	if err := decodeDocument(doc, &class); err != nil {
		return nil, err
	}
	class.ID = doc.ID

	return &class, nil
}

// GetAll retrieves all classes
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	return r.query(ctx)
}

// GetByDepartment retrieves all classes of a department
func (r *ClassRepository) GetByDepartment(ctx context.Context, departmentID string) ([]*models.Class, error) {
	return r.query(ctx, store.Where("departmentId", departmentID))
}

// AddStudent registers a student ID on the class roster. Adding an ID that
// is already present is a no-op.
func (r *ClassRepository) AddStudent(ctx context.Context, classID, studentID string) error {
	err := r.store.Update(ctx, CollectionClasses, classID, []store.FieldUpdate{
		store.ArrayUnion("studentsOfClass", studentID),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("error adding student to class: %w", err)
	}
	return nil
}

// RemoveStudent removes a student ID from the class roster
func (r *ClassRepository) RemoveStudent(ctx context.Context, classID, studentID string) error {
	err := r.store.Update(ctx, CollectionClasses, classID, []store.FieldUpdate{
		store.ArrayRemove("studentsOfClass", studentID),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("error removing student from class: %w", err)
	}
	return nil
}

func (r *ClassRepository) query(ctx context.Context, filters ...store.Filter) ([]*models.Class, error) {
	docs, err := r.store.Query(ctx, CollectionClasses, filters...)
	if err != nil {
		return nil, fmt.Errorf("error querying classes: %w", err)
	}

	classes := make([]*models.Class, 0, len(docs))
	for i := range docs {
		var class models.Class
		if err := decodeDocument(&docs[i], &class); err != nil {
			return nil, err
		}
		class.ID = docs[i].ID
		classes = append(classes, &class)
	}

	return classes, nil
}
