package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// FloorUsecase defines the interface for floor-related business operations.
type FloorUsecase interface {
	ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error)
	GetFloor(ctx context.Context, id uuid.UUID) (*entity.Floor, error)
	CreateFloor(ctx context.Context, actorID uuid.UUID, input *CreateFloorInput) (*entity.Floor, error)
	UpdateFloor(ctx context.Context, actorID, id uuid.UUID, input *UpdateFloorInput) (*entity.Floor, error)
	DeleteFloor(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateFloorInput defines the data required to create a floor.
type CreateFloorInput struct {
	Name        string    `json:"name"`
	BuildingID  uuid.UUID `json:"building_id"`
	FloorNumber *int      `json:"floor_number,omitempty"`
}

// UpdateFloorInput defines the data required to update a floor. The owning
// building cannot change after creation.
type UpdateFloorInput struct {
	Name        string `json:"name"`
	FloorNumber *int   `json:"floor_number,omitempty"`
}
