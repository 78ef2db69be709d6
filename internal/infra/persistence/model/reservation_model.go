package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel is the GORM-specific struct for the 'reservations' table.
type ReservationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	EquipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Purpose     string    `gorm:"type:varchar(200);not null"`
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
