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

// OfferingRepository handles document-store operations for course offerings,
// the (course, instructor, class) assignments students enroll in.
type OfferingRepository struct {
	store store.Store
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(st store.Store) *OfferingRepository {
	return &OfferingRepository{store: st}
}

// Create creates a new offering. The (course, instructor, class) tuple must
// not already be assigned.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.Offering) error {
	existing, err := r.FindAssignment(ctx, offering.CourseID, offering.InstructorID, offering.ClassID)
	if err != nil && !errors.Is(err, apperrors.ErrOfferingNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrDuplicateAssignment
	}

	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}

	if err := r.store.Create(ctx, CollectionOfferings, offering.ID, offering); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrDuplicateAssignment
		}
		return fmt.Errorf("error creating offering: %w", err)
	}

	return nil
}

// GetByID retrieves an offering by ID
func (r *OfferingRepository) GetByID(ctx context.Context, id string) (*models.Offering, error) {
	doc, err := r.store.Get(ctx, CollectionOfferings, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error retrieving offering: %w", err)
	}

	var offering models.Offering
	if err := decodeDocument(doc, &offering); err != nil {
		return nil, err
	}
	offering.ID = doc.ID

	return &offering, nil
}

// GetAll retrieves all offerings
func (r *OfferingRepository) GetAll(ctx context.Context) ([]*models.Offering, error) {
	return r.query(ctx)
}

// GetByInstructor retrieves all offerings taught by an instructor
func (r *OfferingRepository) GetByInstructor(ctx context.Context, instructorID string) ([]*models.Offering, error) {
	return r.query(ctx, store.Where("instructorId", instructorID))
}

// GetByClass retrieves all offerings assigned to a class
func (r *OfferingRepository) GetByClass(ctx context.Context, classID string) ([]*models.Offering, error) {
	return r.query(ctx, store.Where("classId", classID))
}

// FindAssignment retrieves the offering matching an exact
// (course, instructor, class) tuple.
func (r *OfferingRepository) FindAssignment(ctx context.Context, courseID, instructorID, classID string) (*models.Offering, error) {
	docs, err := r.store.Query(ctx, CollectionOfferings,
		store.Where("courseId", courseID),
		store.Where("instructorId", instructorID),
		store.Where("classId", classID))
	if err != nil {
		return nil, fmt.Errorf("error querying offerings: %w", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrOfferingNotFound
	}

	var offering models.Offering
	if err := decodeDocument(&docs[0], &offering); err != nil {
		return nil, err
	}
	offering.ID = docs[0].ID

	return &offering, nil
}

// Delete deletes an offering by ID
func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionOfferings, id); err != nil {
		return fmt.Errorf("error deleting offering: %w", err)
	}
	return nil
}

func (r *OfferingRepository) query(ctx context.Context, filters ...store.Filter) ([]*models.Offering, error) {
	docs, err := r.store.Query(ctx, CollectionOfferings, filters...)
	if err != nil {
		return nil, fmt.Errorf("error querying offerings: %w", err)
	}

	offerings := make([]*models.Offering, 0, len(docs))
	for i := range docs {
		var offering models.Offering
		if err := decodeDocument(&docs[i], &offering); err != nil {
			return nil, err
		}
		offering.ID = docs[i].ID
		offerings = append(offerings, &offering)
	}

	return offerings, nil
}
