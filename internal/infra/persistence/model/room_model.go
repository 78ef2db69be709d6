package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel is the GORM-specific struct for the 'rooms' table.
type RoomModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	FloorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Capacity  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
