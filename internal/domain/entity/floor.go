package entity

import (
	"time"

	"github.com/google/uuid"
)

// Floor belongs to exactly one building and owns zero or more rooms.
// BuildingID is a back-reference for lookup, never an ownership pointer.
type Floor struct {
	ID          uuid.UUID
	Name        string // Display name, e.g. "2F" or "Mezzanine".
	BuildingID  uuid.UUID
	FloorNumber *int // Ordinal within the building; nil when not applicable.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFloor validates the supplied fields and returns an immutable floor value.
func NewFloor(id uuid.UUID, name string, buildingID uuid.UUID, floorNumber *int, now time.Time) (*Floor, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedName, err := requiredText("name", name)
	if err != nil {
		return nil, err
	}

	if err := requiredID("buildingId", buildingID); err != nil {
		return nil, err
	}

	if err := optionalNonNegative("floorNumber", floorNumber); err != nil {
		return nil, err
	}

	return &Floor{
		ID:          id,
		Name:        trimmedName,
		BuildingID:  buildingID,
		FloorNumber: floorNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
