package entity

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a managed asset placed in a room and classified by a category.
// Reservations, maintenance records and comments hang off it.
type Equipment struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	RoomID     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewEquipment validates the supplied fields and returns an immutable
// equipment value.
func NewEquipment(id uuid.UUID, name string, categoryID, roomID uuid.UUID, now time.Time) (*Equipment, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedName, err := requiredText("name", name)
	if err != nil {
		return nil, err
	}

	if err := requiredID("categoryId", categoryID); err != nil {
		return nil, err
	}

	if err := requiredID("roomId", roomID); err != nil {
		return nil, err
	}

	return &Equipment{
		ID:         id,
		Name:       trimmedName,
		CategoryID: categoryID,
		RoomID:     roomID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
