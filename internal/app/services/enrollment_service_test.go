package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func TestEnrollmentService_Apply(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))

	student := env.student(t, "std-1")
	assert.Equal(t, []string{"off-1"}, student.EnrolledCourses)

	// Applying again is a no-op, not a duplicate
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))
	student = env.student(t, "std-1")
	assert.Equal(t, []string{"off-1"}, student.EnrolledCourses)

	err := env.enrollment.Apply(ctx, "std-1", "off-missing")
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)

	err = env.enrollment.Apply(ctx, "std-missing", "off-1")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollmentService_ApplyHeldElsewhereIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))
	require.NoError(t, env.enrollment.Approve(ctx, "std-1", "off-1"))

	// The offering now lives in currentCourses; re-applying must not
	// resurrect it in enrolledCourses.
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))

	student := env.student(t, "std-1")
	assert.Empty(t, student.EnrolledCourses)
	assert.Equal(t, []string{"off-1"}, student.CurrentCourses)
}

func TestEnrollmentService_ApproveMovesBetweenSets(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-1"))
	require.NoError(t, env.enrollment.Approve(ctx, "std-1", "off-1"))

	student := env.student(t, "std-1")
	assert.Empty(t, student.EnrolledCourses)
	assert.Equal(t, []string{"off-1"}, student.CurrentCourses)

	// Not in the applied set anymore
	err := env.enrollment.Approve(ctx, "std-1", "off-1")
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestEnrollmentService_ApproveRequiresPrerequisites(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-intro", "CS101", 3)
	env.seedCourse(t, "crs-adv", "CS201", 3, "crs-intro")
	env.seedOffering(t, "off-adv", "crs-adv")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-adv"))

	err := env.enrollment.Approve(ctx, "std-1", "off-adv")
	assert.ErrorIs(t, err, apperrors.ErrPrerequisitesNotMet)

	// Completing the prerequisite course unlocks approval. The completed
	// set holds catalog course IDs, not offering IDs.
	student := env.student(t, "std-1")
	student.CompletedCourses = []string{"crs-intro"}
	require.NoError(t, env.repos.StudentRepository.Save(ctx, student))

	require.NoError(t, env.enrollment.Approve(ctx, "std-1", "off-adv"))
	assert.Equal(t, []string{"off-adv"}, env.student(t, "std-1").CurrentCourses)
}

func TestEnrollmentService_DisapproveOnlyWhenIneligible(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-intro", "CS101", 3)
	env.seedCourse(t, "crs-adv", "CS201", 3, "crs-intro")
	env.seedOffering(t, "off-intro", "crs-intro")
	env.seedOffering(t, "off-adv", "crs-adv")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-intro"))
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-adv"))

	// No prerequisites means the application is eligible and cannot be
	// disapproved.
	err := env.enrollment.Disapprove(ctx, "std-1", "off-intro")
	assert.ErrorIs(t, err, apperrors.ErrPrerequisitesSatisfied)

	// Unmet prerequisites permit disapproval
	require.NoError(t, env.enrollment.Disapprove(ctx, "std-1", "off-adv"))

	student := env.student(t, "std-1")
	assert.Equal(t, []string{"off-intro"}, student.EnrolledCourses)
	assert.Empty(t, student.CurrentCourses)

	err = env.enrollment.Disapprove(ctx, "std-1", "off-adv")
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestEnrollmentService_CheckPrerequisites(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-a", "CS101", 3)
	env.seedCourse(t, "crs-b", "CS102", 3)
	env.seedCourse(t, "crs-adv", "CS301", 3, "crs-a", "crs-b")
	env.seedOffering(t, "off-adv", "crs-adv")

	tests := []struct {
		name      string
		completed []string
		satisfied bool
	}{
		{name: "none completed", completed: nil, satisfied: false},
		{name: "partially completed", completed: []string{"crs-a"}, satisfied: false},
		{name: "all completed", completed: []string{"crs-a", "crs-b"}, satisfied: true},
		{name: "extra courses do not hurt", completed: []string{"crs-a", "crs-b", "crs-x"}, satisfied: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := env.seedStudent(t, "std-"+tt.name, "FA22-"+tt.name)
			student.CompletedCourses = tt.completed
			require.NoError(t, env.repos.StudentRepository.Save(ctx, student))

			satisfied, err := env.enrollment.CheckPrerequisites(ctx, env.student(t, student.ID), "off-adv")
			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, satisfied)
		})
	}
}

func TestEnrollmentService_ListApplications(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-intro", "CS101", 3)
	env.seedCourse(t, "crs-adv", "CS201", 3, "crs-intro")
	env.seedOffering(t, "off-intro", "crs-intro")
	env.seedOffering(t, "off-adv", "crs-adv")
	env.seedStudent(t, "std-1", "FA22-001")

	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-intro"))
	require.NoError(t, env.enrollment.Apply(ctx, "std-1", "off-adv"))

	applications, err := env.enrollment.ListApplications(ctx, "std-1")
	require.NoError(t, err)
	require.Len(t, applications, 2)

	byOffering := map[string]Application{}
	for _, app := range applications {
		byOffering[app.Offering.ID] = app
	}
	assert.True(t, byOffering["off-intro"].PrerequisitesSatisfied)
	assert.False(t, byOffering["off-adv"].PrerequisitesSatisfied)
	assert.Equal(t, "CS101", byOffering["off-intro"].Offering.Course.Code)
}
