package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFloorNotFound is returned when a floor is not found.
var ErrFloorNotFound = errors.New("floor not found")

// FloorRepository defines the standard operations for floor persistence.
type FloorRepository interface {
	// FindAll retrieves every floor.
	FindAll(ctx context.Context) ([]*entity.Floor, error)

	// FindByID retrieves a single floor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Floor, error)

	// FindByBuilding retrieves the floors of a building.
	FindByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error)

	// Save upserts a floor.
	Save(ctx context.Context, floor *entity.Floor) error

	// Delete removes a floor by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
