package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room belongs to exactly one floor and may be referenced by equipment.
type Room struct {
	ID        uuid.UUID
	Name      string
	FloorID   uuid.UUID
	Capacity  *int // Seating capacity; nil when not tracked.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom validates the supplied fields and returns an immutable room value.
func NewRoom(id uuid.UUID, name string, floorID uuid.UUID, capacity *int, now time.Time) (*Room, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedName, err := requiredText("name", name)
	if err != nil {
		return nil, err
	}

	if err := requiredID("floorId", floorID); err != nil {
		return nil, err
	}

	if err := optionalNonNegative("capacity", capacity); err != nil {
		return nil, err
	}

	return &Room{
		ID:        id,
		Name:      trimmedName,
		FloorID:   floorID,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
