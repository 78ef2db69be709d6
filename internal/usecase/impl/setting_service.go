package impl

import (
	"context"
	"log/slog"
	"time"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// settingService implements the SettingUsecase interface.
type settingService struct {
	gate     actorGate
	settings repository.SystemSettingRepository
	views    service.ViewCache
	logger   *slog.Logger
}

// NewSettingService is the constructor for settingService.
func NewSettingService(
	userRepo repository.UserRepository,
	settingRepo repository.SystemSettingRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.SettingUsecase {
	return &settingService{
		gate:     actorGate{users: userRepo},
		settings: settingRepo,
		views:    views,
		logger:   logger,
	}
}

// ListSettings retrieves every setting, serving the cached view when warm.
func (srv *settingService) ListSettings(ctx context.Context) ([]*entity.SystemSetting, error) {
	if cached, ok := srv.views.Get(viewSettings); ok {
		if settings, ok := cached.([]*entity.SystemSetting); ok {
			return settings, nil
		}
	}

	settings, err := srv.settings.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	srv.views.Set(viewSettings, settings)

	return settings, nil
}

// GetSetting retrieves a single setting by key.
func (srv *settingService) GetSetting(ctx context.Context, key string) (*entity.SystemSetting, error) {
	setting, err := srv.settings.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSystemSettingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("setting not found")
		}

		return nil, errors.Wrap(err, "failed to get setting")
	}

	return setting, nil
}

// PutSetting creates or overwrites a setting. The timezone key only accepts
// values that resolve as IANA zones; the entity constructor enforces that.
// Restricted to administrators.
func (srv *settingService) PutSetting(ctx context.Context, actorID uuid.UUID, input *usecase.PutSettingInput) (*entity.SystemSetting, error) {
	actor, err := srv.gate.admin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	// Writes to an existing key keep its id so history stays addressable.
	id := uuid.New()
	if existing, err := srv.settings.FindByKey(ctx, input.Key); err == nil {
		id = existing.ID
	} else if !errors.Is(err, repository.ErrSystemSettingNotFound) {
		return nil, errors.Wrap(err, "failed to look up setting")
	}

	updatedBy := actor.ID
	setting, err := entity.NewSystemSetting(id, input.Key, input.Value, time.Now(), &updatedBy)
	if err != nil {
		return nil, err
	}

	if err := srv.settings.Save(ctx, setting); err != nil {
		return nil, errors.Wrap(err, "failed to save setting")
	}

	srv.logger.Info("Setting saved", "key", setting.Key, "actorID", actorID)
	srv.views.Invalidate(settingViews()...)

	return setting, nil
}

// DeleteSetting removes a setting by id. Restricted to administrators.
func (srv *settingService) DeleteSetting(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.admin(ctx, actorID); err != nil {
		return err
	}

	if err := srv.settings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSystemSettingNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("setting not found")
		}

		return errors.Wrap(err, "failed to delete setting")
	}

	srv.logger.Info("Setting deleted", "settingID", id, "actorID", actorID)
	srv.views.Invalidate(settingViews()...)

	return nil
}
