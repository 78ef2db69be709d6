package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when saving a user whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence,
// including the favorites set.
type UserRepository interface {
	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID, favorites included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save upserts a user.
	Save(ctx context.Context, user *entity.User) error

	// AddFavorite records equipment in the user's favorites set. Adding an
	// already-present id succeeds as a no-op.
	AddFavorite(ctx context.Context, userID, equipmentID uuid.UUID) error

	// RemoveFavorite drops equipment from the user's favorites set. Removing
	// an absent id succeeds as a no-op.
	RemoveFavorite(ctx context.Context, userID, equipmentID uuid.UUID) error
}
