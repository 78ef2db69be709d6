package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a staff account. Favorites holds the ids of equipment the user has
// bookmarked; membership is managed through the user repository so concurrent
// toggles stay idempotent at the storage level.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Favorites    []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates the supplied fields and returns an immutable user value.
// The password hash is produced by the caller; the constructor never hashes.
func NewUser(id uuid.UUID, email, name, passwordHash string, role Role, now time.Time) (*User, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedEmail, err := requiredText("email", email)
	if err != nil {
		return nil, err
	}

	trimmedName, err := requiredText("name", name)
	if err != nil {
		return nil, err
	}

	trimmedHash, err := requiredText("passwordHash", passwordHash)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, NewValidationError("role must be one of admin, editor, member")
	}

	return &User{
		ID:           id,
		Email:        trimmedEmail,
		Name:         trimmedName,
		PasswordHash: trimmedHash,
		Role:         role,
		Favorites:    nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasFavorite reports whether the user has bookmarked the given equipment.
func (u *User) HasFavorite(equipmentID uuid.UUID) bool {
	return slices.Contains(u.Favorites, equipmentID)
}
