package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// DepartmentRepository handles document-store operations for departments
type DepartmentRepository struct {
	store store.Store
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(st store.Store) *DepartmentRepository {
	return &DepartmentRepository{store: st}
}

// Create creates a new department document. The ID must be the ID of the
// department's user account.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	exists, err := r.existsByNameOrAbbreviation(ctx, department.Name, department.Abbreviation)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrDepartmentAlreadyExists
	}

	if err := r.store.Create(ctx, CollectionDepartments, department.ID, department); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*models.Department, error) {
	doc, err := r.store.Get(ctx, CollectionDepartments, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	var department models.Department
	if err := decodeDocument(doc, &department); err != nil {
		return nil, err
	}
	department.ID = doc.ID

	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	docs, err := r.store.Query(ctx, CollectionDepartments)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}

	departments := make([]*models.Department, 0, len(docs))
	for i := range docs {
		var department models.Department
		if err := decodeDocument(&docs[i], &department); err != nil {
			return nil, err
		}
		department.ID = docs[i].ID
		departments = append(departments, &department)
	}

	return departments, nil
}

func (r *DepartmentRepository) existsByNameOrAbbreviation(ctx context.Context, name, abbreviation string) (bool, error) {
	byName, err := r.store.Query(ctx, CollectionDepartments, store.Where("name", name))
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	if len(byName) > 0 {
		return true, nil
	}

	byAbbrev, err := r.store.Query(ctx, CollectionDepartments, store.Where("abbreviation", abbreviation))
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return len(byAbbrev) > 0, nil
}
