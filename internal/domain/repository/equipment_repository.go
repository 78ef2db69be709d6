package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for equipment persistence.
var (
	// ErrEquipmentNotFound is returned when a piece of equipment is not found.
	ErrEquipmentNotFound = errors.New("equipment not found")
	// ErrEquipmentCategoryNotFound is returned when a category is not found.
	ErrEquipmentCategoryNotFound = errors.New("equipment category not found")
)

// EquipmentRepository defines the standard operations for equipment persistence.
type EquipmentRepository interface {
	// FindAll retrieves every piece of equipment.
	FindAll(ctx context.Context) ([]*entity.Equipment, error)

	// FindByID retrieves a single piece of equipment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)

	// FindByRoom retrieves the equipment placed in a room.
	FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Equipment, error)

	// Save upserts a piece of equipment.
	Save(ctx context.Context, equipment *entity.Equipment) error

	// Delete removes a piece of equipment by id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentCategoryRepository defines the standard operations for category persistence.
type EquipmentCategoryRepository interface {
	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*entity.EquipmentCategory, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentCategory, error)

	// Save upserts a category.
	Save(ctx context.Context, category *entity.EquipmentCategory) error

	// Delete removes a category by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
