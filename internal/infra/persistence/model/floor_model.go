package model

import (
	"time"

	"github.com/google/uuid"
)

// FloorModel is the GORM-specific struct for the 'floors' table.
type FloorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(100);not null"`
	BuildingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FloorNumber *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FloorModel) TableName() string {
	return "floors"
}
