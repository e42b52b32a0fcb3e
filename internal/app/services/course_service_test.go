package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func TestCourseService_CreateCourseValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	courses := NewCourseService(env.repos.CourseRepository)

	env.seedCourse(t, "crs-1", "CS101", 3)

	tests := []struct {
		name   string
		course models.Course
	}{
		{name: "empty name", course: models.Course{Code: "CS102", CreditHours: 3}},
		{name: "empty code", course: models.Course{Name: "Programming II", CreditHours: 3}},
		{name: "zero credit hours", course: models.Course{Name: "Programming II", Code: "CS102"}},
		{name: "credit hours above bound", course: models.Course{
			Name: "Programming II", Code: "CS102", CreditHours: 7,
		}},
		{name: "unknown prerequisite", course: models.Course{
			Name: "Programming II", Code: "CS102", CreditHours: 3,
			PreRequisites: []string{"crs-missing"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := tt.course
			err := courses.CreateCourse(ctx, &course)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	require.NoError(t, courses.CreateCourse(ctx, &models.Course{
		Name: "Programming II", Code: "CS102", CreditHours: 3,
		PreRequisites: []string{"crs-1"},
	}))

	// Duplicate course code
	err := courses.CreateCourse(ctx, &models.Course{
		Name: "Programming II again", Code: "CS102", CreditHours: 3,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}
