package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingUsecase defines the interface for system setting operations.
// Mutations are restricted to administrators.
type SettingUsecase interface {
	ListSettings(ctx context.Context) ([]*entity.SystemSetting, error)
	GetSetting(ctx context.Context, key string) (*entity.SystemSetting, error)
	PutSetting(ctx context.Context, actorID uuid.UUID, input *PutSettingInput) (*entity.SystemSetting, error)
	DeleteSetting(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// PutSettingInput defines the data required to create or overwrite a setting.
type PutSettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
