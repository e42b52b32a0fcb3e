package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func TestComputeGPA(t *testing.T) {
	tests := []struct {
		name     string
		grades   []models.CourseGrade
		expected string
	}{
		{
			name:     "no credits yields N/A",
			grades:   nil,
			expected: "N/A",
		},
		{
			name: "single course",
			grades: []models.CourseGrade{
				{Grade: models.GradeA, CreditHours: 3},
			},
			expected: "4.00",
		},
		{
			name: "credit-weighted mix",
			grades: []models.CourseGrade{
				{Grade: models.GradeA, CreditHours: 3},      // 12.00
				{Grade: models.GradeBPlus, CreditHours: 4},  // 13.32
				{Grade: models.GradeCMinus, CreditHours: 2}, // 3.34
			},
			expected: "3.18", // 28.66 / 9
		},
		{
			name: "rounded to two decimals",
			grades: []models.CourseGrade{
				{Grade: models.GradeAMinus, CreditHours: 3}, // 11.01
				{Grade: models.GradeBMinus, CreditHours: 3}, // 8.01
			},
			expected: "3.17", // 19.02 / 6 = 3.17
		},
		{
			name: "failed course drags the average",
			grades: []models.CourseGrade{
				{Grade: models.GradeA, CreditHours: 3},
				{Grade: models.GradeF, CreditHours: 3},
			},
			expected: "2.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.ComputeGPA(tt.grades).String())
		})
	}
}

func TestResultsService_CompileSemester(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedCourse(t, "crs-2", "MA101", 4)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedOffering(t, "off-2", "crs-2")
	env.seedStudent(t, "std-1", "FA22-001")

	for _, offeringID := range []string{"off-1", "off-2"} {
		require.NoError(t, env.enrollment.Apply(ctx, "std-1", offeringID))
		require.NoError(t, env.enrollment.Approve(ctx, "std-1", offeringID))
	}

	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-1", models.GradeA))

	sheet, err := env.results.CompileSemester(ctx, "std-1")
	require.NoError(t, err)
	require.Len(t, sheet.Results, 2)

	byOffering := map[string]CourseResult{}
	for _, row := range sheet.Results {
		byOffering[row.OfferingID] = row
	}
	assert.Equal(t, models.GradeA, byOffering["off-1"].Grade)
	assert.Equal(t, models.GradeUnassigned, byOffering["off-2"].Grade)

	// Only the graded course counts toward the interim GPA
	assert.Equal(t, "4.00", sheet.GPA.String())
}

func TestResultsService_FinalizeSemester(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedCourse(t, "crs-2", "MA101", 4)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedOffering(t, "off-2", "crs-2")
	env.seedStudent(t, "std-1", "FA22-001")

	for _, offeringID := range []string{"off-1", "off-2"} {
		require.NoError(t, env.enrollment.Apply(ctx, "std-1", offeringID))
		require.NoError(t, env.enrollment.Approve(ctx, "std-1", offeringID))
	}

	// Wrong confirmation code never finalizes
	_, err := env.results.FinalizeSemester(ctx, "std-1", "000000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfirmationCode)

	// Grades must be complete
	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-1", models.GradeA))
	_, err = env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	assert.ErrorIs(t, err, apperrors.ErrGradesIncomplete)

	require.NoError(t, env.marking.AssignGrade(ctx, "off-2", "std-1", models.GradeBPlus))

	result, err := env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Semester)
	assert.Equal(t, "3.62", result.GPA) // (4.00*3 + 3.33*4) / 7

	student := env.student(t, "std-1")
	assert.Empty(t, student.CurrentCourses)
	// Completed entries are catalog course IDs, usable by later
	// prerequisite checks
	assert.ElementsMatch(t, []string{"crs-1", "crs-2"}, student.CompletedCourses)
	require.Len(t, student.Results, 1)
	assert.Equal(t, "3.62", student.Results[0].GPA)

	// Offerings nobody references anymore are retired with their records
	_, err = env.repos.OfferingRepository.GetByID(ctx, "off-1")
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
	_, err = env.repos.MarksRepository.Get(ctx, "off-1")
	assert.ErrorIs(t, err, apperrors.ErrMarksNotFound)

	// Nothing left to finalize
	_, err = env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	assert.ErrorIs(t, err, apperrors.ErrNoCurrentCourses)
}

func TestResultsService_FinalizeKeepsOfferingsOthersStillTake(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")
	env.seedStudent(t, "std-2", "FA22-002")

	for _, studentID := range []string{"std-1", "std-2"} {
		require.NoError(t, env.enrollment.Apply(ctx, studentID, "off-1"))
		require.NoError(t, env.enrollment.Approve(ctx, studentID, "off-1"))
	}

	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-1", models.GradeA))
	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-2", models.GradeB))

	_, err := env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	require.NoError(t, err)

	// std-2 is still taking the offering, so it and its marks survive
	_, err = env.repos.OfferingRepository.GetByID(ctx, "off-1")
	require.NoError(t, err)
	record, err := env.repos.MarksRepository.Get(ctx, "off-1")
	require.NoError(t, err)
	assert.Equal(t, models.GradeB, record.GradeFor("std-2"))

	// Once the last taker finalizes, the offering goes away
	_, err = env.results.FinalizeSemester(ctx, "std-2", testFinalizationCode)
	require.NoError(t, err)
	_, err = env.repos.OfferingRepository.GetByID(ctx, "off-1")
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestResultsService_SemesterNumbersAccumulate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedCourse(t, "crs-2", "CS201", 3)
	env.seedStudent(t, "std-1", "FA22-001")

	env.seedOffering(t, "off-1", "crs-1")
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))
	require.NoError(t, env.enrollment.Approve(ctx, "std-1", "off-1"))
	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-1", models.GradeA))

	first, err := env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Semester)

	env.seedOffering(t, "off-2", "crs-2")
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-2"))
	require.NoError(t, env.enrollment.Approve(ctx, "std-1", "off-2"))
	require.NoError(t, env.marking.AssignGrade(ctx, "off-2", "std-1", models.GradeB))

	second, err := env.results.FinalizeSemester(ctx, "std-1", testFinalizationCode)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Semester)

	history, err := env.results.History(ctx, "std-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "4.00", history[0].GPA)
	assert.Equal(t, "3.00", history[1].GPA)
}
