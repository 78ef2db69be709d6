// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBuildingNotFound is returned when a building is not found. Callers must
// treat it as a distinct case from an operational storage failure.
var ErrBuildingNotFound = errors.New("building not found")

// BuildingRepository defines the standard operations for building persistence.
type BuildingRepository interface {
	// FindAll retrieves every building.
	FindAll(ctx context.Context) ([]*entity.Building, error)

	// FindByID retrieves a single building by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)

	// Save upserts a building: inserted when the id is new, fully replaced
	// otherwise.
	Save(ctx context.Context, building *entity.Building) error

	// Delete removes a building by id. The storage layer's foreign keys
	// decide whether children block the delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
