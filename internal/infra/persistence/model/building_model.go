// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BuildingModel is the GORM-specific struct for the 'buildings' table.
type BuildingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Address   *string   `gorm:"type:varchar(200)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}
