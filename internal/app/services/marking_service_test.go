package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func TestMarkingService_AddCriterion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Midterm", Weightage: 30, TotalMarks: 50,
	}))
	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Final", Weightage: 50, TotalMarks: 100,
	}))

	record, err := env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	assert.Len(t, record.CriteriaDefined, 2)
	assert.Equal(t, float64(80), record.TotalWeightage())

	// Duplicate assessment name
	err = env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Midterm", Weightage: 10, TotalMarks: 10,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAssessment)

	// Pushing the total over 100 percent
	err = env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Project", Weightage: 25, TotalMarks: 100,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeightageExceeded)

	// Filling up to exactly 100 is fine
	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Quizzes", Weightage: 20, TotalMarks: 40,
	}))
}

func TestMarkingService_AddCriterionValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")

	tests := []struct {
		name      string
		criterion models.Criterion
	}{
		{name: "empty assessment", criterion: models.Criterion{Weightage: 10, TotalMarks: 10}},
		{name: "zero weightage", criterion: models.Criterion{Assessment: "Quiz", TotalMarks: 10}},
		{name: "weightage above 100", criterion: models.Criterion{Assessment: "Quiz", Weightage: 120, TotalMarks: 10}},
		{name: "zero total marks", criterion: models.Criterion{Assessment: "Quiz", Weightage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.marking.AddCriterion(ctx, "off-1", tt.criterion)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestMarkingService_SaveMarksAndGrade(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Midterm", Weightage: 40, TotalMarks: 50,
	}))

	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Midterm": 42}))

	record, err := env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	entry, ok := record.MarksFor("std-1")
	require.True(t, ok)
	assert.Equal(t, float64(42), entry.Marks["Midterm"])
	// A fresh entry starts as incomplete until a grade is chosen
	assert.Equal(t, models.GradeIncomplete, entry.Grade)

	// Scores must target a defined assessment and respect its bounds
	err = env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Final": 10})
	assert.ErrorIs(t, err, apperrors.ErrAssessmentNotFound)
	err = env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Midterm": 60})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, env.marking.AssignGrade(ctx, "off-1", "std-1", models.GradeAMinus))

	record, err = env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	assert.Equal(t, models.GradeAMinus, record.GradeFor("std-1"))

	err = env.marking.AssignGrade(ctx, "off-1", "std-1", models.Grade("Z"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
}

func TestMarkingService_EditCriterionRenameMigratesMarks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")
	env.seedStudent(t, "std-2", "FA22-002")

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Mid", Weightage: 30, TotalMarks: 50,
	}))
	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Mid": 40}))
	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-2", map[string]float64{"Mid": 25}))

	require.NoError(t, env.marking.EditCriterion(ctx, "off-1", "Mid", models.Criterion{
		Assessment: "Midterm", Weightage: 35, TotalMarks: 50,
	}))

	record, err := env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)

	criterion, ok := record.Criterion("Midterm")
	require.True(t, ok)
	assert.Equal(t, float64(35), criterion.Weightage)
	_, ok = record.Criterion("Mid")
	assert.False(t, ok)

	// Every student's score followed the rename
	for _, studentID := range []string{"std-1", "std-2"} {
		entry, ok := record.MarksFor(studentID)
		require.True(t, ok)
		_, hasOld := entry.Marks["Mid"]
		assert.False(t, hasOld)
		_, hasNew := entry.Marks["Midterm"]
		assert.True(t, hasNew)
	}

	err = env.marking.EditCriterion(ctx, "off-1", "Missing", models.Criterion{
		Assessment: "X", Weightage: 10, TotalMarks: 10,
	})
	assert.ErrorIs(t, err, apperrors.ErrAssessmentNotFound)
}

func TestMarkingService_DeleteCriterionCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Quiz", Weightage: 10, TotalMarks: 10,
	}))
	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Final", Weightage: 50, TotalMarks: 100,
	}))
	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{
		"Quiz": 8, "Final": 70,
	}))

	require.NoError(t, env.marking.DeleteCriterion(ctx, "off-1", "Quiz"))

	record, err := env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	assert.Len(t, record.CriteriaDefined, 1)

	entry, ok := record.MarksFor("std-1")
	require.True(t, ok)
	_, hasQuiz := entry.Marks["Quiz"]
	assert.False(t, hasQuiz)
	assert.Equal(t, float64(70), entry.Marks["Final"])

	err = env.marking.DeleteCriterion(ctx, "off-1", "Quiz")
	assert.ErrorIs(t, err, apperrors.ErrAssessmentNotFound)
}

func TestMarkingService_StaleMarksSaveConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Midterm", Weightage: 40, TotalMarks: 50,
	}))

	// Two graders read the shared record at the same version
	first, err := env.repos.MarksRepository.Get(ctx, "off-1")
	require.NoError(t, err)
	second, err := env.repos.MarksRepository.Get(ctx, "off-1")
	require.NoError(t, err)

	first.MarksOfStudents = append(first.MarksOfStudents, models.StudentMarks{
		StudentID: "std-1",
		Marks:     map[string]float64{"Midterm": 30},
		Grade:     models.GradeIncomplete,
	})
	require.NoError(t, env.repos.MarksRepository.Save(ctx, "off-1", first))

	// The second save is working from a stale version and must lose
	second.MarksOfStudents = append(second.MarksOfStudents, models.StudentMarks{
		StudentID: "std-1",
		Marks:     map[string]float64{"Midterm": 45},
		Grade:     models.GradeIncomplete,
	})
	err = env.repos.MarksRepository.Save(ctx, "off-1", second)
	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)

	// A fresh read-modify-write goes through and sees the first write
	record, err := env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	entry, ok := record.MarksFor("std-1")
	require.True(t, ok)
	assert.Equal(t, float64(30), entry.Marks["Midterm"])

	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Midterm": 45}))
	record, err = env.marking.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	entry, ok = record.MarksFor("std-1")
	require.True(t, ok)
	assert.Equal(t, float64(45), entry.Marks["Midterm"])
}

func TestMarkingService_WeightedScore(t *testing.T) {
	criterion := models.Criterion{Assessment: "Midterm", Weightage: 30, TotalMarks: 50}
	assert.InDelta(t, 24.0, models.WeightedScore(40, criterion), 0.0001)
	assert.Equal(t, 0.0, models.WeightedScore(40, models.Criterion{TotalMarks: 0}))
}
