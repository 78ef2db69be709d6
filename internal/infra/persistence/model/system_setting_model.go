package model

import (
	"time"

	"github.com/google/uuid"
)

// SystemSettingModel is the GORM-specific struct for the 'system_settings' table.
type SystemSettingModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	Key       string     `gorm:"column:key;type:varchar(100);unique;not null"`
	Value     string     `gorm:"type:text;not null"`
	UpdatedAt time.Time
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
