package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// WithdrawalService drives withdrawal requests and their confirmation. A
// request is a soft flag: the offering stays in the student's current set
// and keeps appearing in semester compilation until confirmation drops it
// from both sets and scrubs the student's entries from the offering's
// shared marks and attendance documents without touching other students'.
type WithdrawalService struct {
	studentRepo    *repositories.StudentRepository
	offeringRepo   *repositories.OfferingRepository
	marksRepo      *repositories.MarksRepository
	attendanceRepo *repositories.AttendanceRepository
	logger         zerolog.Logger
}

// NewWithdrawalService creates a new withdrawal service instance
func NewWithdrawalService(
	studentRepo *repositories.StudentRepository,
	offeringRepo *repositories.OfferingRepository,
	marksRepo *repositories.MarksRepository,
	attendanceRepo *repositories.AttendanceRepository,
	logger zerolog.Logger,
) *WithdrawalService {
	return &WithdrawalService{
		studentRepo:    studentRepo,
		offeringRepo:   offeringRepo,
		marksRepo:      marksRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Request flags an in-progress offering for withdrawal. The offering must be
// current and stays current; re-requesting is a no-op.
func (s *WithdrawalService) Request(ctx context.Context, studentID, offeringID string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !student.HasCurrent(offeringID) {
		return apperrors.ErrNotCurrent
	}

	return s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayUnion("withdrawCourses", offeringID),
	})
}

// Cancel clears the withdrawal flag; the offering was never taken out of the
// current set.
func (s *WithdrawalService) Cancel(ctx context.Context, studentID, offeringID string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !student.HasWithdrawRequest(offeringID) {
		return apperrors.ErrWithdrawalNotRequested
	}

	return s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayRemove("withdrawCourses", offeringID),
	})
}

// Confirm finalizes a withdrawal: the offering leaves the student's sets
// for good and the student's marks and attendance entries for it are
// scrubbed from the shared per-offering documents.
func (s *WithdrawalService) Confirm(ctx context.Context, studentID, offeringID string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !student.HasWithdrawRequest(offeringID) {
		return apperrors.ErrWithdrawalNotRequested
	}

	err = s.studentRepo.Update(ctx, student, []store.FieldUpdate{
		store.ArrayRemove("currentCourses", offeringID),
		store.ArrayRemove("withdrawCourses", offeringID),
	})
	if err != nil {
		return err
	}

	if err := s.scrubMarks(ctx, studentID, offeringID); err != nil {
		return err
	}
	if err := s.scrubAttendance(ctx, studentID, offeringID); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", studentID).Str("offeringId", offeringID).
		Msg("Withdrawal confirmed")
	return nil
}

// ListRequested resolves the student's withdraw set into offering IDs
func (s *WithdrawalService) ListRequested(ctx context.Context, studentID string) ([]string, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return student.WithdrawCourses, nil
}

func (s *WithdrawalService) scrubMarks(ctx context.Context, studentID, offeringID string) error {
	record, err := s.marksRepo.Get(ctx, offeringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMarksNotFound) {
			return nil
		}
		return err
	}

	kept := record.MarksOfStudents[:0]
	changed := false
	for _, entry := range record.MarksOfStudents {
		if entry.StudentID == studentID {
			changed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !changed {
		return nil
	}

	record.MarksOfStudents = kept
	return s.marksRepo.Save(ctx, offeringID, record)
}

func (s *WithdrawalService) scrubAttendance(ctx context.Context, studentID, offeringID string) error {
	record, err := s.attendanceRepo.Get(ctx, offeringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceNotFound) {
			return nil
		}
		return err
	}

	changed := false
	for i := range record.Attendances {
		if _, ok := record.Attendances[i].Records[studentID]; ok {
			delete(record.Attendances[i].Records, studentID)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return s.attendanceRepo.Save(ctx, offeringID, record)
}
