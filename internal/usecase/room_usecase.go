package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomUsecase defines the interface for room-related business operations.
type RoomUsecase interface {
	ListRooms(ctx context.Context, floorID uuid.UUID) ([]*entity.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	CreateRoom(ctx context.Context, actorID uuid.UUID, input *CreateRoomInput) (*entity.Room, error)
	UpdateRoom(ctx context.Context, actorID, id uuid.UUID, input *UpdateRoomInput) (*entity.Room, error)
	DeleteRoom(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateRoomInput defines the data required to create a room.
type CreateRoomInput struct {
	Name     string    `json:"name"`
	FloorID  uuid.UUID `json:"floor_id"`
	Capacity *int      `json:"capacity,omitempty"`
}

// UpdateRoomInput defines the data required to update a room. The owning
// floor cannot change after creation.
type UpdateRoomInput struct {
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}
