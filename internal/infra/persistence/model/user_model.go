package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserFavoriteModel is the GORM-specific struct for the 'user_favorites'
// join table backing the favorites set. The composite primary key makes
// duplicate memberships impossible at the storage level.
type UserFavoriteModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	EquipmentID uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFavoriteModel) TableName() string {
	return "user_favorites"
}
