package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/uzafar/campusdesk/internal/app/models"
	appRepos "github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/pkg/auth"
	"github.com/uzafar/campusdesk/internal/store"
)

const (
	defaultAdminEmail    = "admin@campusdesk.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
// Without it a fresh deployment has no account that can register the
// department and instructor users.
func CreateDefaultData(ctx context.Context, st store.Store, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(st)

	lgr.Info().Msg("Checking/Creating default admin account...")

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return err
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:        defaultAdminEmail,
		PasswordHash: hashedPassword,
		Name:         "System Administrator",
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin account already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("adminId", admin.ID).Str("email", admin.Email).
		Msg("Default admin account created successfully")
	return nil
}
