package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/pkg/auth"
)

func newAuthEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.auth.jwtService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusdesk.test",
	})
	return env
}

func TestAuthService_RegisterAndLoginRoles(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv(t)

	_, err := env.auth.RegisterAdmin(ctx, "admin@campusdesk.app", "secret123", "Admin")
	require.NoError(t, err)

	_, err = env.auth.RegisterDepartment(ctx, "cs@campusdesk.app", "secret123", &models.Department{
		Name: "Computer Science", Abbreviation: "CS",
	})
	require.NoError(t, err)

	_, err = env.auth.RegisterInstructor(ctx, "smith@campusdesk.app", "secret123", &models.Instructor{
		Name: "J. Smith", DepartmentID: mustLoginID(t, env, "cs@campusdesk.app", "secret123"),
	})
	require.NoError(t, err)

	tests := []struct {
		email string
		role  models.RoleType
	}{
		{email: "admin@campusdesk.app", role: models.RoleAdmin},
		{email: "cs@campusdesk.app", role: models.RoleDepartment},
		{email: "smith@campusdesk.app", role: models.RoleInstructor},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			result, err := env.auth.Login(ctx, tt.email, "secret123")
			require.NoError(t, err)
			assert.Equal(t, tt.role, result.Role)
			assert.NotEmpty(t, result.Token)

			claims, err := env.auth.jwtService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, string(tt.role), claims.Role)
			assert.Equal(t, tt.email, claims.Email)
		})
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv(t)

	_, err := env.auth.RegisterAdmin(ctx, "admin@campusdesk.app", "secret123", "Admin")
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, "admin@campusdesk.app", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, "nobody@campusdesk.app", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv(t)

	_, err := env.auth.RegisterAdmin(ctx, "admin@campusdesk.app", "secret123", "Admin")
	require.NoError(t, err)

	_, err = env.auth.RegisterAdmin(ctx, "admin@campusdesk.app", "otherpass123", "Other")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterInstructorRequiresDepartment(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv(t)

	_, err := env.auth.RegisterInstructor(ctx, "smith@campusdesk.app", "secret123", &models.Instructor{
		Name: "J. Smith", DepartmentID: "missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestAuthService_RegisterValidatesCredentials(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "malformed email", email: "not-an-email", password: "secret123"},
		{name: "missing domain", email: "admin@", password: "secret123"},
		{name: "short password", email: "admin@campusdesk.app", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.RegisterAdmin(ctx, tt.email, tt.password, "Admin")
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func mustLoginID(t *testing.T, env *testEnv, email, password string) string {
	t.Helper()
	result, err := env.auth.Login(context.Background(), email, password)
	require.NoError(t, err)
	return result.UserID
}
