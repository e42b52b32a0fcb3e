package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/pkg/auth"
	"github.com/uzafar/campusdesk/internal/pkg/validation"
)

// AuthService handles authentication and account registration. Roles are not
// stored: a user whose ID matches a departments document is DEPARTMENT, one
// whose ID matches an instructors document is INSTRUCTOR, anyone else is
// ADMIN.
type AuthService struct {
	userRepo       *repositories.UserRepository
	departmentRepo *repositories.DepartmentRepository
	instructorRepo *repositories.InstructorRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo *repositories.UserRepository,
	departmentRepo *repositories.DepartmentRepository,
	instructorRepo *repositories.InstructorRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		instructorRepo: instructorRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// LoginResult carries the outcome of a successful login
type LoginResult struct {
	UserID    string
	Email     string
	Name      string
	Role      models.RoleType
	Token     string
	ExpiresIn int
}

// RegisterAdmin creates an administrator account
func (s *AuthService) RegisterAdmin(ctx context.Context, email, password, name string) (*models.User, error) {
	return s.createAccount(ctx, "", email, password, name)
}

// RegisterDepartment creates a department account together with its
// departments document. Both share one ID so the role can be derived later.
func (s *AuthService) RegisterDepartment(ctx context.Context, email, password string, department *models.Department) (*models.User, error) {
	user, err := s.createAccount(ctx, "", email, password, department.Name)
	if err != nil {
		return nil, err
	}

	department.ID = user.ID
	department.Email = email
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("departmentId", department.ID).Str("name", department.Name).
		Msg("Department account registered")
	return user, nil
}

// RegisterInstructor creates an instructor account together with its
// instructors document. The department must exist.
func (s *AuthService) RegisterInstructor(ctx context.Context, email, password string, instructor *models.Instructor) (*models.User, error) {
	if _, err := s.departmentRepo.GetByID(ctx, instructor.DepartmentID); err != nil {
		return nil, err
	}

	user, err := s.createAccount(ctx, "", email, password, instructor.Name)
	if err != nil {
		return nil, err
	}

	instructor.ID = user.ID
	instructor.Email = email
	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("instructorId", instructor.ID).Str("departmentId", instructor.DepartmentID).
		Msg("Instructor account registered")
	return user, nil
}

// Login authenticates a user by email and password and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.ResolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &LoginResult{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      role,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// Profile retrieves the account behind a user ID, with its derived role
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, models.RoleType, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	role, err := s.ResolveRole(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	return user, role, nil
}

// ResolveRole derives a user's role from collection membership
func (s *AuthService) ResolveRole(ctx context.Context, userID string) (models.RoleType, error) {
	if _, err := s.departmentRepo.GetByID(ctx, userID); err == nil {
		return models.RoleDepartment, nil
	} else if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return "", err
	}

	if _, err := s.instructorRepo.GetByID(ctx, userID); err == nil {
		return models.RoleInstructor, nil
	} else if !errors.Is(err, apperrors.ErrInstructorNotFound) {
		return "", err
	}

	return models.RoleAdmin, nil
}

func (s *AuthService) createAccount(ctx context.Context, id, email, password, name string) (*models.User, error) {
	emailValid := validation.NewStringValidation(strings.ToLower(email)).
		WithPattern(validation.CompiledPatterns.Email).
		Validate()
	if !emailValid {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidationFailed)
	}
	if len(password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
