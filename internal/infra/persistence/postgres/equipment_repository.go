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

// equipmentRepository implements the repository.EquipmentRepository interface.
type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository is the constructor for equipmentRepository.
func NewEquipmentRepository(db *gorm.DB) repository.EquipmentRepository {
	return &equipmentRepository{
		db: db,
	}
}

// FindAll retrieves every piece of equipment.
func (repo *equipmentRepository) FindAll(ctx context.Context) ([]*entity.Equipment, error) {
	var equipmentModels []*model.EquipmentModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&equipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	return mapEquipment(equipmentModels), nil
}

// FindByID retrieves a piece of equipment by its unique ID.
func (repo *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	var equipmentM model.EquipmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&equipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find equipment by ID")
	}

	return toEquipmentDomain(&equipmentM), nil
}

// FindByRoom retrieves the equipment placed in a room.
func (repo *equipmentRepository) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Equipment, error) {
	var equipmentModels []*model.EquipmentModel

	if err := repo.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("name ASC").
		Find(&equipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find equipment by room")
	}

	return mapEquipment(equipmentModels), nil
}

// Save upserts a piece of equipment.
func (repo *equipmentRepository) Save(ctx context.Context, equipment *entity.Equipment) error {
	equipmentM := fromEquipmentDomain(equipment)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(equipmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("category or room does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save equipment")
	}

	return nil
}

// Delete removes a piece of equipment by id.
func (repo *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EquipmentModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("equipment still has dependent records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete equipment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEquipmentNotFound
	}

	return nil
}

func mapEquipment(equipmentModels []*model.EquipmentModel) []*entity.Equipment {
	equipment := make([]*entity.Equipment, 0, len(equipmentModels))
	for _, equipmentM := range equipmentModels {
		equipment = append(equipment, toEquipmentDomain(equipmentM))
	}

	return equipment
}

func toEquipmentDomain(data *model.EquipmentModel) *entity.Equipment {
	return &entity.Equipment{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
		RoomID:     data.RoomID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromEquipmentDomain(data *entity.Equipment) *model.EquipmentModel {
	return &model.EquipmentModel{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
		RoomID:     data.RoomID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
