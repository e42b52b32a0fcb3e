package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

// ResultsService compiles semester results and finalizes semesters. On
// finalization the catalog course IDs behind the student's current
// offerings move into the completed set, the semester GPA is appended to
// the results history, and offerings no student references anymore are
// retired together with their marks and attendance documents.
type ResultsService struct {
	studentRepo      *repositories.StudentRepository
	offeringRepo     *repositories.OfferingRepository
	courseRepo       *repositories.CourseRepository
	marksRepo        *repositories.MarksRepository
	attendanceRepo   *repositories.AttendanceRepository
	finalizationCode string
	logger           zerolog.Logger
}

// NewResultsService creates a new results service instance
func NewResultsService(
	studentRepo *repositories.StudentRepository,
	offeringRepo *repositories.OfferingRepository,
	courseRepo *repositories.CourseRepository,
	marksRepo *repositories.MarksRepository,
	attendanceRepo *repositories.AttendanceRepository,
	finalizationCode string,
	logger zerolog.Logger,
) *ResultsService {
	return &ResultsService{
		studentRepo:      studentRepo,
		offeringRepo:     offeringRepo,
		courseRepo:       courseRepo,
		marksRepo:        marksRepo,
		attendanceRepo:   attendanceRepo,
		finalizationCode: finalizationCode,
		logger:           logger,
	}
}

// CourseResult is one row of a student's semester result sheet
type CourseResult struct {
	OfferingID string
	Course     *models.Course
	Grade      models.Grade
	Points     float64
}

// SemesterSheet is a student's compiled current semester: per-course rows
// plus the GPA over them.
type SemesterSheet struct {
	Results []CourseResult
	GPA     models.GPA
}

// CompileSemester joins the student's current offerings with their courses
// and assigned grades into a result sheet. Ungraded courses appear with the
// unassigned sentinel and zero points.
func (s *ResultsService) CompileSemester(ctx context.Context, studentID string) (*SemesterSheet, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.compile(ctx, student)
}

// FinalizeSemester closes out a student's current semester. The operator
// confirmation code must match, every current course must be graded, and
// the student must have courses in progress. The completed-set entries are
// catalog course IDs, which is what later prerequisite checks consult.
func (s *ResultsService) FinalizeSemester(ctx context.Context, studentID, confirmationCode string) (*models.SemesterResult, error) {
	if confirmationCode != s.finalizationCode {
		return nil, apperrors.ErrInvalidConfirmationCode
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(student.CurrentCourses) == 0 {
		return nil, apperrors.ErrNoCurrentCourses
	}

	sheet, err := s.compile(ctx, student)
	if err != nil {
		return nil, err
	}
	for _, row := range sheet.Results {
		if !row.Grade.Assigned() {
			return nil, apperrors.ErrGradesIncomplete
		}
	}

	finalized := student.CurrentCourses
	for _, row := range sheet.Results {
		if row.Course != nil && !student.HasCompleted(row.Course.ID) {
			student.CompletedCourses = append(student.CompletedCourses, row.Course.ID)
		}
	}

	result := models.SemesterResult{
		Semester: len(student.Results) + 1,
		GPA:      sheet.GPA.String(),
	}
	student.Results = append(student.Results, result)
	student.CurrentCourses = []string{}

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	for _, offeringID := range finalized {
		if err := s.retireOfferingIfUnused(ctx, offeringID, studentID); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("studentId", studentID).Int("semester", result.Semester).
		Str("gpa", result.GPA).Msg("Semester finalized")
	return &result, nil
}

// History returns the student's per-semester results history
func (s *ResultsService) History(ctx context.Context, studentID string) ([]models.SemesterResult, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return student.Results, nil
}

func (s *ResultsService) compile(ctx context.Context, student *models.Student) (*SemesterSheet, error) {
	sheet := &SemesterSheet{Results: make([]CourseResult, 0, len(student.CurrentCourses))}
	grades := make([]models.CourseGrade, 0, len(student.CurrentCourses))

	for _, offeringID := range student.CurrentCourses {
		offering, err := s.offeringRepo.GetByID(ctx, offeringID)
		if err != nil {
			return nil, err
		}
		course, err := s.courseRepo.GetByID(ctx, offering.CourseID)
		if err != nil {
			return nil, err
		}

		grade := models.GradeUnassigned
		record, err := s.marksRepo.Get(ctx, offeringID)
		if err != nil && !errors.Is(err, apperrors.ErrMarksNotFound) {
			return nil, err
		}
		if record != nil {
			grade = record.GradeFor(student.ID)
		}

		sheet.Results = append(sheet.Results, CourseResult{
			OfferingID: offeringID,
			Course:     course,
			Grade:      grade,
			Points:     grade.Points(),
		})
		if grade.Assigned() {
			grades = append(grades, models.CourseGrade{Grade: grade, CreditHours: course.CreditHours})
		}
	}

	sheet.GPA = models.ComputeGPA(grades)
	return sheet, nil
}

// retireOfferingIfUnused deletes an offering and its marks and attendance
// documents once no student holds it in any in-flight set. An offering
// another student still references stays untouched.
func (s *ResultsService) retireOfferingIfUnused(ctx context.Context, offeringID, finalizedStudentID string) error {
	referenced, err := s.studentRepo.OfferingReferenced(ctx, offeringID, finalizedStudentID)
	if err != nil {
		return err
	}
	if referenced {
		return nil
	}

	if err := s.marksRepo.Delete(ctx, offeringID); err != nil {
		return err
	}
	if err := s.attendanceRepo.Delete(ctx, offeringID); err != nil {
		return err
	}
	if err := s.offeringRepo.Delete(ctx, offeringID); err != nil {
		return err
	}

	s.logger.Info().Str("offeringId", offeringID).Msg("Offering retired")
	return nil
}
