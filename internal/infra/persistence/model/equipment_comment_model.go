package model

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentCommentModel is the GORM-specific struct for the 'equipment_comments' table.
// The author snapshot shown alongside a comment is joined at read time and is
// not a column here.
type EquipmentCommentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	EquipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentCommentModel) TableName() string {
	return "equipment_comments"
}
