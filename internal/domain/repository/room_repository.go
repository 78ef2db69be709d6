package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoomNotFound is returned when a room is not found.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository defines the standard operations for room persistence.
type RoomRepository interface {
	// FindAll retrieves every room.
	FindAll(ctx context.Context) ([]*entity.Room, error)

	// FindByID retrieves a single room by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindByFloor retrieves the rooms of a floor.
	FindByFloor(ctx context.Context, floorID uuid.UUID) ([]*entity.Room, error)

	// Save upserts a room.
	Save(ctx context.Context, room *entity.Room) error

	// Delete removes a room by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
