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

// floorRepository implements the repository.FloorRepository interface.
type floorRepository struct {
	db *gorm.DB
}

// NewFloorRepository is the constructor for floorRepository.
func NewFloorRepository(db *gorm.DB) repository.FloorRepository {
	return &floorRepository{
		db: db,
	}
}

// FindAll retrieves every floor.
func (repo *floorRepository) FindAll(ctx context.Context) ([]*entity.Floor, error) {
	var floorModels []*model.FloorModel

	if err := repo.db.WithContext(ctx).
		Order("building_id ASC, floor_number ASC NULLS LAST").
		Find(&floorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list floors")
	}

	return mapFloors(floorModels), nil
}

// FindByID retrieves a floor by its unique ID.
func (repo *floorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Floor, error) {
	var floorM model.FloorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&floorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFloorNotFound
		}

		return nil, errors.Wrap(err, "failed to find floor by ID")
	}

	return toFloorDomain(&floorM), nil
}

// FindByBuilding retrieves the floors of a building ordered by floor number.
func (repo *floorRepository) FindByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error) {
	var floorModels []*model.FloorModel

	if err := repo.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("floor_number ASC NULLS LAST").
		Find(&floorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find floors by building")
	}

	return mapFloors(floorModels), nil
}

// Save upserts a floor. A building id that references nothing surfaces the
// storage layer's foreign key violation.
func (repo *floorRepository) Save(ctx context.Context, floor *entity.Floor) error {
	floorM := fromFloorDomain(floor)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(floorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuildingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save floor")
	}

	return nil
}

// Delete removes a floor by id.
func (repo *floorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.FloorModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("floor still has rooms")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete floor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFloorNotFound
	}

	return nil
}

func mapFloors(floorModels []*model.FloorModel) []*entity.Floor {
	floors := make([]*entity.Floor, 0, len(floorModels))
	for _, floorM := range floorModels {
		floors = append(floors, toFloorDomain(floorM))
	}

	return floors
}

func toFloorDomain(data *model.FloorModel) *entity.Floor {
	return &entity.Floor{
		ID:          data.ID,
		Name:        data.Name,
		BuildingID:  data.BuildingID,
		FloorNumber: data.FloorNumber,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFloorDomain(data *entity.Floor) *model.FloorModel {
	return &model.FloorModel{
		ID:          data.ID,
		Name:        data.Name,
		BuildingID:  data.BuildingID,
		FloorNumber: data.FloorNumber,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
