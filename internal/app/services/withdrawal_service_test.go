package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func withdrawalFixture(t *testing.T) (*testEnv, context.Context) {
	t.Helper()
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
	return env, ctx
}

func TestWithdrawalService_RequestAndCancel(t *testing.T) {
	env, ctx := withdrawalFixture(t)

	require.NoError(t, env.withdrawal.Request(ctx, "std-1", "off-1"))

	// The request is a soft flag: the offering stays current
	student := env.student(t, "std-1")
	assert.Equal(t, []string{"off-1"}, student.CurrentCourses)
	assert.Equal(t, []string{"off-1"}, student.WithdrawCourses)

	// Re-requesting is a no-op
	require.NoError(t, env.withdrawal.Request(ctx, "std-1", "off-1"))
	student = env.student(t, "std-1")
	assert.Equal(t, []string{"off-1"}, student.WithdrawCourses)

	require.NoError(t, env.withdrawal.Cancel(ctx, "std-1", "off-1"))

	student = env.student(t, "std-1")
	assert.Equal(t, []string{"off-1"}, student.CurrentCourses)
	assert.Empty(t, student.WithdrawCourses)

	err := env.withdrawal.Cancel(ctx, "std-1", "off-1")
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotRequested)
}

func TestWithdrawalService_PendingRequestKeepsCourseInCompilation(t *testing.T) {
	env, ctx := withdrawalFixture(t)

	require.NoError(t, env.withdrawal.Request(ctx, "std-1", "off-1"))

	// Until confirmation the student is still taking the course, so the
	// semester sheet keeps showing it
	sheet, err := env.results.CompileSemester(ctx, "std-1")
	require.NoError(t, err)
	require.Len(t, sheet.Results, 1)
	assert.Equal(t, "off-1", sheet.Results[0].OfferingID)

	require.NoError(t, env.withdrawal.Confirm(ctx, "std-1", "off-1"))

	sheet, err = env.results.CompileSemester(ctx, "std-1")
	require.NoError(t, err)
	assert.Empty(t, sheet.Results)
}

func TestWithdrawalService_ConfirmScrubsSharedRecords(t *testing.T) {
	env, ctx := withdrawalFixture(t)

	require.NoError(t, env.marking.AddCriterion(ctx, "off-1", models.Criterion{
		Assessment: "Midterm", Weightage: 40, TotalMarks: 50,
	}))
	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-1", map[string]float64{"Midterm": 30}))
	require.NoError(t, env.marking.SaveMarks(ctx, "off-1", "std-2", map[string]float64{"Midterm": 45}))

	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-02", map[string]bool{
		"std-1": true, "std-2": false,
	}))
	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-09", map[string]bool{
		"std-1": false, "std-2": true,
	}))

	require.NoError(t, env.withdrawal.Request(ctx, "std-1", "off-1"))
	require.NoError(t, env.withdrawal.Confirm(ctx, "std-1", "off-1"))

	student := env.student(t, "std-1")
	assert.Empty(t, student.WithdrawCourses)
	assert.Empty(t, student.CurrentCourses)

	// The withdrawn student's marks entry is gone, the other student's is
	// untouched.
	record, err := env.repos.MarksRepository.Get(ctx, "off-1")
	require.NoError(t, err)
	_, ok := record.MarksFor("std-1")
	assert.False(t, ok)
	entry, ok := record.MarksFor("std-2")
	require.True(t, ok)
	assert.Equal(t, float64(45), entry.Marks["Midterm"])

	// Same for attendance: sessions survive, only std-1's flags are removed
	attendance, err := env.repos.AttendanceRepository.Get(ctx, "off-1")
	require.NoError(t, err)
	require.Len(t, attendance.Attendances, 2)
	for _, session := range attendance.Attendances {
		_, hasWithdrawn := session.Records["std-1"]
		assert.False(t, hasWithdrawn)
		_, hasOther := session.Records["std-2"]
		assert.True(t, hasOther)
	}
}

func TestWithdrawalService_ConfirmWithoutRequest(t *testing.T) {
	env, ctx := withdrawalFixture(t)

	err := env.withdrawal.Confirm(ctx, "std-1", "off-1")
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotRequested)
}

func TestWithdrawalService_ConfirmWithoutSharedRecords(t *testing.T) {
	env, ctx := withdrawalFixture(t)

	// No marks or attendance documents exist yet; confirmation still works
	require.NoError(t, env.withdrawal.Request(ctx, "std-2", "off-1"))
	require.NoError(t, env.withdrawal.Confirm(ctx, "std-2", "off-1"))

	student := env.student(t, "std-2")
	assert.Empty(t, student.WithdrawCourses)
}
