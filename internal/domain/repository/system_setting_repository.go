package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSystemSettingNotFound is returned when a setting is not found.
var ErrSystemSettingNotFound = errors.New("system setting not found")

// SystemSettingRepository defines the standard operations for setting persistence.
type SystemSettingRepository interface {
	// FindAll retrieves every setting.
	FindAll(ctx context.Context) ([]*entity.SystemSetting, error)

	// FindByID retrieves a single setting by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error)

	// FindByKey retrieves a single setting by its unique key.
	FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error)

	// Save upserts a setting.
	Save(ctx context.Context, setting *entity.SystemSetting) error

	// Delete removes a setting by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
