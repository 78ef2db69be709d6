package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEquipmentCommentNotFound is returned when a comment is not found.
var ErrEquipmentCommentNotFound = errors.New("equipment comment not found")

// EquipmentCommentRepository defines the standard operations for comment persistence.
type EquipmentCommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentComment, error)

	// FindByEquipment retrieves the comments on a piece of equipment,
	// newest first.
	FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.EquipmentComment, error)

	// Save upserts a comment.
	Save(ctx context.Context, comment *entity.EquipmentComment) error

	// Delete removes a comment by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
