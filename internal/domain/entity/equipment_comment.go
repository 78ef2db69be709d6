package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommentAuthor is a denormalized snapshot of the comment's author attached at
// read time for display. It is not part of the comment's persisted identity.
type CommentAuthor struct {
	ID   uuid.UUID
	Name string
}

// EquipmentComment is a remark a staff member left on a piece of equipment.
type EquipmentComment struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	UserID      uuid.UUID
	Content     string
	CreatedAt   time.Time
	Author      *CommentAuthor // Populated by read aggregation, nil otherwise.
}

// NewEquipmentComment validates the supplied fields and returns an immutable
// comment value. createdAt is caller-supplied so the constructor stays pure.
func NewEquipmentComment(id, equipmentID, userID uuid.UUID, content string, createdAt time.Time) (*EquipmentComment, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	if err := requiredID("equipmentId", equipmentID); err != nil {
		return nil, err
	}

	if err := requiredID("userId", userID); err != nil {
		return nil, err
	}

	trimmedContent, err := requiredText("content", content)
	if err != nil {
		return nil, err
	}

	return &EquipmentComment{
		ID:          id,
		EquipmentID: equipmentID,
		UserID:      userID,
		Content:     trimmedContent,
		CreatedAt:   createdAt,
	}, nil
}

// WithAuthor returns a copy of the comment with the author snapshot attached.
func (c *EquipmentComment) WithAuthor(author *CommentAuthor) *EquipmentComment {
	copied := *c
	copied.Author = author

	return &copied
}
