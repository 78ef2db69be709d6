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

// buildingRepository implements the repository.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{
		db: db,
	}
}

// FindAll retrieves every building ordered by name.
func (repo *buildingRepository) FindAll(ctx context.Context) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&buildingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	buildings := make([]*entity.Building, 0, len(buildingModels))
	for _, buildingM := range buildingModels {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}

// FindByID retrieves a building by its unique ID.
func (repo *buildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	var buildingM model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	return toBuildingDomain(&buildingM), nil
}

// Save upserts a building: a new id inserts, an existing id replaces all fields.
func (repo *buildingRepository) Save(ctx context.Context, building *entity.Building) error {
	buildingM := fromBuildingDomain(building)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(buildingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save building")
	}

	return nil
}

// Delete removes a building. Floors still referencing it make the storage
// layer reject the delete, surfaced as a conflict.
func (repo *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BuildingModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("building still has floors")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete building")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	return nil
}

func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	return &entity.Building{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBuildingDomain(data *entity.Building) *model.BuildingModel {
	return &model.BuildingModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
