package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for equipment comment operations.
// Any authenticated user may comment; authors and editorial roles may delete.
type CommentUsecase interface {
	ListComments(ctx context.Context, equipmentID uuid.UUID) ([]*entity.EquipmentComment, error)
	CreateComment(ctx context.Context, actorID uuid.UUID, input *CreateCommentInput) (*entity.EquipmentComment, error)
	DeleteComment(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateCommentInput defines the data required to comment on equipment.
type CreateCommentInput struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Content     string    `json:"content"`
}
