package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a fresh token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and access operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account. The very first account on the
	// platform becomes an administrator; every later one starts as a member.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// GetUser retrieves a single user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers returns every account. Restricted to administrators.
	ListUsers(ctx context.Context, actorID uuid.UUID) ([]*entity.User, error)

	// ChangeRole assigns a new role to a user. Restricted to administrators.
	ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error)
}
