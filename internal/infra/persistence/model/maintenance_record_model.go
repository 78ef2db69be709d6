package model

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecordModel is the GORM-specific struct for the 'maintenance_records' table.
type MaintenanceRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	EquipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	PerformedAt time.Time `gorm:"not null"`
	CostCents   *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceRecordModel) TableName() string {
	return "maintenance_records"
}
