package entity

import (
	"time"

	"github.com/google/uuid"
)

// Building is the root of the facility hierarchy. It owns zero or more floors;
// deleting a building does not cascade here, the storage layer's foreign keys
// decide whether children block the delete.
type Building struct {
	ID        uuid.UUID // Unique identifier of the building.
	Name      string    // Display name, e.g. "North Tower".
	Address   *string   // Street address; nil when unknown.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBuilding validates the supplied fields and returns an immutable building
// value. It returns a *ValidationError on the first violated invariant.
func NewBuilding(id uuid.UUID, name string, address *string, now time.Time) (*Building, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedName, err := requiredText("name", name)
	if err != nil {
		return nil, err
	}

	return &Building{
		ID:        id,
		Name:      trimmedName,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
