package postgres

import (
	"context"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// systemSettingRepository implements the repository.SystemSettingRepository interface.
type systemSettingRepository struct {
	db *gorm.DB
}

// NewSystemSettingRepository is the constructor for systemSettingRepository.
func NewSystemSettingRepository(db *gorm.DB) repository.SystemSettingRepository {
	return &systemSettingRepository{
		db: db,
	}
}

// FindAll retrieves every setting ordered by key.
func (repo *systemSettingRepository) FindAll(ctx context.Context) ([]*entity.SystemSetting, error) {
	var settingModels []*model.SystemSettingModel

	if err := repo.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all system settings")
	}

	settings := make([]*entity.SystemSetting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSystemSettingDomain(settingM))
	}

	return settings, nil
}

// FindByID retrieves a setting by its unique ID.
func (repo *systemSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error) {
	var settingM model.SystemSettingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSystemSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find system setting by ID")
	}

	return toSystemSettingDomain(&settingM), nil
}

// FindByKey retrieves a setting by its unique key.
func (repo *systemSettingRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	var settingM model.SystemSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSystemSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find system setting by key")
	}

	return toSystemSettingDomain(&settingM), nil
}

// Save upserts a setting. Conflicts on the unique key column are surfaced
// as conflicts rather than silently merged, since two distinct ids must not
// share a key.
func (repo *systemSettingRepository) Save(ctx context.Context, setting *entity.SystemSetting) error {
	settingM := fromSystemSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("a setting with this key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save system setting")
	}

	return nil
}

// Delete removes a setting by id.
func (repo *systemSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SystemSettingModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete system setting")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSystemSettingNotFound
	}

	return nil
}

func toSystemSettingDomain(data *model.SystemSettingModel) *entity.SystemSetting {
	return &entity.SystemSetting{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		UpdatedAt: data.UpdatedAt,
		UpdatedBy: data.UpdatedBy,
	}
}

func fromSystemSettingDomain(data *entity.SystemSetting) *model.SystemSettingModel {
	return &model.SystemSettingModel{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		UpdatedAt: data.UpdatedAt,
		UpdatedBy: data.UpdatedBy,
	}
}
