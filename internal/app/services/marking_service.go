package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

// MarkingService manages an offering's grading scheme and marks. The marks
// record is one shared document per offering, so every mutation is a
// read-modify-write guarded by the document version.
type MarkingService struct {
	marksRepo    *repositories.MarksRepository
	offeringRepo *repositories.OfferingRepository
	studentRepo  *repositories.StudentRepository
	logger       zerolog.Logger
}

// NewMarkingService creates a new marking service instance
func NewMarkingService(
	marksRepo *repositories.MarksRepository,
	offeringRepo *repositories.OfferingRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *MarkingService {
	return &MarkingService{
		marksRepo:    marksRepo,
		offeringRepo: offeringRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// GetRecord retrieves the marks record of an offering, empty if none exists
func (s *MarkingService) GetRecord(ctx context.Context, offeringID string) (*models.MarksRecord, error) {
	if _, err := s.offeringRepo.GetByID(ctx, offeringID); err != nil {
		return nil, err
	}
	return s.marksRepo.GetOrEmpty(ctx, offeringID)
}

// AddCriterion defines a new assessment on an offering's grading scheme.
// Assessment names are unique per offering and the combined weightage may
// not exceed 100 percent.
func (s *MarkingService) AddCriterion(ctx context.Context, offeringID string, criterion models.Criterion) error {
	if err := validateCriterion(criterion); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	if _, exists := record.Criterion(criterion.Assessment); exists {
		return apperrors.ErrDuplicateAssessment
	}
	if record.TotalWeightage()+criterion.Weightage > 100 {
		return apperrors.ErrWeightageExceeded
	}

	record.CriteriaDefined = append(record.CriteriaDefined, criterion)
	if err := s.marksRepo.Save(ctx, offeringID, record); err != nil {
		return err
	}

	if total := record.TotalWeightage(); total < 100 {
		s.logger.Warn().Str("offeringId", offeringID).Float64("totalWeightage", total).
			Msg("Grading criteria do not yet cover the full weightage")
	}
	return nil
}

// EditCriterion replaces an assessment definition. Renaming migrates every
// student's stored score to the new assessment name.
func (s *MarkingService) EditCriterion(ctx context.Context, offeringID, assessment string, updated models.Criterion) error {
	if err := validateCriterion(updated); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	idx := -1
	for i, c := range record.CriteriaDefined {
		if c.Assessment == assessment {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrAssessmentNotFound
	}

	if updated.Assessment != assessment {
		if _, exists := record.Criterion(updated.Assessment); exists {
			return apperrors.ErrDuplicateAssessment
		}
	}

	if record.TotalWeightage()-record.CriteriaDefined[idx].Weightage+updated.Weightage > 100 {
		return apperrors.ErrWeightageExceeded
	}

	record.CriteriaDefined[idx] = updated

	if updated.Assessment != assessment {
		for i := range record.MarksOfStudents {
			marks := record.MarksOfStudents[i].Marks
			if score, ok := marks[assessment]; ok {
				marks[updated.Assessment] = score
				delete(marks, assessment)
			}
		}
	}

	return s.marksRepo.Save(ctx, offeringID, record)
}

// DeleteCriterion removes an assessment and every student's score for it
func (s *MarkingService) DeleteCriterion(ctx context.Context, offeringID, assessment string) error {
	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	kept := record.CriteriaDefined[:0]
	found := false
	for _, c := range record.CriteriaDefined {
		if c.Assessment == assessment {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return apperrors.ErrAssessmentNotFound
	}
	record.CriteriaDefined = kept

	for i := range record.MarksOfStudents {
		delete(record.MarksOfStudents[i].Marks, assessment)
	}

	return s.marksRepo.Save(ctx, offeringID, record)
}

// SaveMarks stores a student's raw scores. Every score must target a
// defined assessment; scores for the same assessment are overwritten. A
// student's first entry starts with the incomplete grade.
func (s *MarkingService) SaveMarks(ctx context.Context, offeringID, studentID string, scores map[string]float64) error {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	for assessment, score := range scores {
		criterion, ok := record.Criterion(assessment)
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrAssessmentNotFound, assessment)
		}
		if score < 0 || score > criterion.TotalMarks {
			return fmt.Errorf("%w: score for %s must be between 0 and %g",
				apperrors.ErrValidationFailed, assessment, criterion.TotalMarks)
		}
	}

	entry, ok := record.MarksFor(studentID)
	if !ok {
		record.MarksOfStudents = append(record.MarksOfStudents, models.StudentMarks{
			StudentID: studentID,
			Marks:     map[string]float64{},
			Grade:     models.GradeIncomplete,
		})
		entry = &record.MarksOfStudents[len(record.MarksOfStudents)-1]
	}
	if entry.Marks == nil {
		entry.Marks = map[string]float64{}
	}
	for assessment, score := range scores {
		entry.Marks[assessment] = score
	}

	return s.marksRepo.Save(ctx, offeringID, record)
}

// AssignGrade sets a student's letter grade for the offering
func (s *MarkingService) AssignGrade(ctx context.Context, offeringID, studentID string, grade models.Grade) error {
	if !grade.Valid() {
		return apperrors.ErrInvalidGrade
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}

	record, err := s.GetRecord(ctx, offeringID)
	if err != nil {
		return err
	}

	entry, ok := record.MarksFor(studentID)
	if !ok {
		record.MarksOfStudents = append(record.MarksOfStudents, models.StudentMarks{
			StudentID: studentID,
			Marks:     map[string]float64{},
			Grade:     grade,
		})
	} else {
		entry.Grade = grade
	}

	if err := s.marksRepo.Save(ctx, offeringID, record); err != nil {
		return err
	}

	s.logger.Info().Str("offeringId", offeringID).Str("studentId", studentID).
		Str("grade", string(grade)).Msg("Grade assigned")
	return nil
}

func validateCriterion(criterion models.Criterion) error {
	if criterion.Assessment == "" {
		return fmt.Errorf("%w: assessment name cannot be empty", apperrors.ErrValidationFailed)
	}
	if criterion.Weightage <= 0 || criterion.Weightage > 100 {
		return fmt.Errorf("%w: weightage must be between 0 and 100", apperrors.ErrValidationFailed)
	}
	if criterion.TotalMarks <= 0 {
		return fmt.Errorf("%w: total marks must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}
