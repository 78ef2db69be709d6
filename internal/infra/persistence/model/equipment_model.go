package model

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentModel is the GORM-specific struct for the 'equipment' table.
type EquipmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"type:varchar(100);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentModel) TableName() string {
	return "equipment"
}

// EquipmentCategoryModel is the GORM-specific struct for the 'equipment_categories' table.
type EquipmentCategoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryMajor string    `gorm:"type:varchar(100);not null"`
	CategoryMinor string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentCategoryModel) TableName() string {
	return "equipment_categories"
}
