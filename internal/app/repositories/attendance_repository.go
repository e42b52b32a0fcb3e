package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// AttendanceRepository handles document-store operations for per-offering
// attendance records. The document ID is the offering ID.
type AttendanceRepository struct {
	store store.Store
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(st store.Store) *AttendanceRepository {
	return &AttendanceRepository{store: st}
}

// Get retrieves the attendance record of an offering
func (r *AttendanceRepository) Get(ctx context.Context, offeringID string) (*models.AttendanceRecord, error) {
	doc, err := r.store.Get(ctx, CollectionAttendances, offeringID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	var record models.AttendanceRecord
	if err := decodeDocument(doc, &record); err != nil {
		return nil, err
	}
	record.Version = doc.Version
	normalizeAttendanceRecord(&record)

	return &record, nil
}

// GetOrEmpty retrieves the attendance record of an offering, returning an
// empty record at version zero when none exists yet.
func (r *AttendanceRepository) GetOrEmpty(ctx context.Context, offeringID string) (*models.AttendanceRecord, error) {
	record, err := r.Get(ctx, offeringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceNotFound) {
			empty := &models.AttendanceRecord{OfferingID: offeringID}
			normalizeAttendanceRecord(empty)
			return empty, nil
		}
		return nil, err
	}
	return record, nil
}

// Save replaces the attendance record of an offering, conditional on the
// version the caller read.
func (r *AttendanceRepository) Save(ctx context.Context, offeringID string, record *models.AttendanceRecord) error {
	normalizeAttendanceRecord(record)
	err := r.store.Set(ctx, CollectionAttendances, offeringID, record,
		store.WithExpectedVersion(record.Version))
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return apperrors.ErrVersionConflict
		}
		return fmt.Errorf("error saving attendance record: %w", err)
	}
	return nil
}

// Delete deletes the attendance record of an offering
func (r *AttendanceRepository) Delete(ctx context.Context, offeringID string) error {
	if err := r.store.Delete(ctx, CollectionAttendances, offeringID); err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	return nil
}

func normalizeAttendanceRecord(record *models.AttendanceRecord) {
	if record.Attendances == nil {
		record.Attendances = []models.AttendanceEntry{}
	}
}
