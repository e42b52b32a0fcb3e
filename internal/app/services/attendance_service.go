package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

// sessionDateLayout is the stored format of attendance session dates
const sessionDateLayout = "2006-01-02"

// AttendanceService manages per-session attendance of an offering. Like
// marks, attendance is one shared document per offering with one entry
// appended per class session.
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	offeringRepo   *repositories.OfferingRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	offeringRepo *repositories.OfferingRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		offeringRepo:   offeringRepo,
	}
}

// GetRecord retrieves the attendance record of an offering, empty if none
// exists yet
func (s *AttendanceService) GetRecord(ctx context.Context, offeringID string) (*models.AttendanceRecord, error) {
	if _, err := s.offeringRepo.GetByID(ctx, offeringID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetOrEmpty(ctx, offeringID)
}

// RecordSession appends one session's present/absent flags. Only one
// session may exist per date.
func (s *AttendanceService) RecordSession(ctx context.Context, offeringID, date string, records map[string]bool) error {
	if err := validateSessionDate(date); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	if _, exists := record.Entry(date); exists {
		return apperrors.ErrDuplicateSessionDate
	}

	if records == nil {
		records = map[string]bool{}
	}
	record.OfferingID = offeringID
	record.Attendances = append(record.Attendances, models.AttendanceEntry{
		Date:    date,
		Records: records,
	})

	return s.attendanceRepo.Save(ctx, offeringID, record)
}

// EditSession replaces the present/absent flags of an existing session
func (s *AttendanceService) EditSession(ctx context.Context, offeringID, date string, records map[string]bool) error {
	if err := validateSessionDate(date); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	entry, exists := record.Entry(date)
	if !exists {
		return apperrors.ErrSessionNotFound
	}

	if records == nil {
		records = map[string]bool{}
	}
	entry.Records = records

	return s.attendanceRepo.Save(ctx, offeringID, record)
}

// AttendanceSummary is one student's presence count over the recorded
// sessions of an offering.
type AttendanceSummary struct {
	StudentID string `json:"studentId"`
	Present   int    `json:"present"`
	Total     int    `json:"total"`
}

// Summary computes presence counts for every student appearing in the
// offering's recorded sessions, ordered by student ID.
func (s *AttendanceService) Summary(ctx context.Context, offeringID string) ([]AttendanceSummary, error) {
	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var studentIDs []string
	for _, session := range record.Attendances {
		for studentID := range session.Records {
			if !seen[studentID] {
				seen[studentID] = true
				studentIDs = append(studentIDs, studentID)
			}
		}
	}
	sort.Strings(studentIDs)

	summaries := make([]AttendanceSummary, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		present, total := record.PresenceRate(studentID)
		summaries = append(summaries, AttendanceSummary{
			StudentID: studentID,
			Present:   present,
			Total:     total,
		})
	}
	return summaries, nil
}

func validateSessionDate(date string) error {
	if _, err := time.Parse(sessionDateLayout, date); err != nil {
		return fmt.Errorf("%w: session date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	return nil
}
