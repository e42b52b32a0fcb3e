package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// MarksRepository handles document-store operations for per-offering marks
// records. The document ID is the offering ID.
type MarksRepository struct {
	store store.Store
}

// NewMarksRepository creates a new marks repository
func NewMarksRepository(st store.Store) *MarksRepository {
	return &MarksRepository{store: st}
}

// Get retrieves the marks record of an offering
func (r *MarksRepository) Get(ctx context.Context, offeringID string) (*models.MarksRecord, error) {
	doc, err := r.store.Get(ctx, CollectionMarks, offeringID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrMarksNotFound
		}
		return nil, fmt.Errorf("error retrieving marks record: %w", err)
	}

	var record models.MarksRecord
	if err := decodeDocument(doc, &record); err != nil {
		return nil, err
	}
	record.Version = doc.Version
	normalizeMarksRecord(&record)

	return &record, nil
}

// GetOrEmpty retrieves the marks record of an offering, returning an empty
// record at version zero when none exists yet.
func (r *MarksRepository) GetOrEmpty(ctx context.Context, offeringID string) (*models.MarksRecord, error) {
	record, err := r.Get(ctx, offeringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMarksNotFound) {
			empty := &models.MarksRecord{}
			normalizeMarksRecord(empty)
			return empty, nil
		}
		return nil, err
	}
	return record, nil
}

// Save replaces the marks record of an offering, conditional on the version
// the caller read. A record read as empty is created fresh.
func (r *MarksRepository) Save(ctx context.Context, offeringID string, record *models.MarksRecord) error {
	normalizeMarksRecord(record)
	err := r.store.Set(ctx, CollectionMarks, offeringID, record,
		store.WithExpectedVersion(record.Version))
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return apperrors.ErrVersionConflict
		}
		return fmt.Errorf("error saving marks record: %w", err)
	}
	return nil
}

// Delete deletes the marks record of an offering
func (r *MarksRepository) Delete(ctx context.Context, offeringID string) error {
	if err := r.store.Delete(ctx, CollectionMarks, offeringID); err != nil {
		return fmt.Errorf("error deleting marks record: %w", err)
	}
	return nil
}

func normalizeMarksRecord(record *models.MarksRecord) {
	if record.CriteriaDefined == nil {
		record.CriteriaDefined = []models.Criterion{}
	}
	if record.MarksOfStudents == nil {
		record.MarksOfStudents = []models.StudentMarks{}
	}
}
