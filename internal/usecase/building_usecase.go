// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// BuildingUsecase defines the interface for building-related business operations.
type BuildingUsecase interface {
	ListBuildings(ctx context.Context) ([]*entity.Building, error)
	GetBuilding(ctx context.Context, id uuid.UUID) (*entity.Building, error)
	CreateBuilding(ctx context.Context, actorID uuid.UUID, input *CreateBuildingInput) (*entity.Building, error)
	UpdateBuilding(ctx context.Context, actorID, id uuid.UUID, input *UpdateBuildingInput) (*entity.Building, error)
	DeleteBuilding(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateBuildingInput defines the data required to create a building.
type CreateBuildingInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

// UpdateBuildingInput defines the data required to update a building.
type UpdateBuildingInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}
