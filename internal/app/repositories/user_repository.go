package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// UserRepository handles document-store operations for user accounts
type UserRepository struct {
	store store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// Create creates a new user account. The email must be unused.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrEmailAlreadyExists
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if err := r.store.Create(ctx, CollectionUsers, user.ID, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user account by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.store.Get(ctx, CollectionUsers, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	var user models.User
	if err := decodeDocument(doc, &user); err != nil {
		return nil, err
	}
	user.ID = doc.ID

	return &user, nil
}

// GetByEmail retrieves a user account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := r.store.Query(ctx, CollectionUsers, store.Where("email", email))
	if err != nil {
		return nil, fmt.Errorf("error querying users by email: %w", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	var user models.User
	if err := decodeDocument(&docs[0], &user); err != nil {
		return nil, err
	}
	user.ID = docs[0].ID

	return &user, nil
}
