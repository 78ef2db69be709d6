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

// equipmentCategoryRepository implements the repository.EquipmentCategoryRepository interface.
type equipmentCategoryRepository struct {
	db *gorm.DB
}

// NewEquipmentCategoryRepository is the constructor for equipmentCategoryRepository.
func NewEquipmentCategoryRepository(db *gorm.DB) repository.EquipmentCategoryRepository {
	return &equipmentCategoryRepository{
		db: db,
	}
}

// FindAll retrieves every category ordered by major, then minor.
func (repo *equipmentCategoryRepository) FindAll(ctx context.Context) ([]*entity.EquipmentCategory, error) {
	var categoryModels []*model.EquipmentCategoryModel

	if err := repo.db.WithContext(ctx).
		Order("category_major ASC, category_minor ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list equipment categories")
	}

	categories := make([]*entity.EquipmentCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toEquipmentCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByID retrieves a category by its unique ID.
func (repo *equipmentCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentCategory, error) {
	var categoryM model.EquipmentCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find equipment category by ID")
	}

	return toEquipmentCategoryDomain(&categoryM), nil
}

// Save upserts a category.
func (repo *equipmentCategoryRepository) Save(ctx context.Context, category *entity.EquipmentCategory) error {
	categoryM := fromEquipmentCategoryDomain(category)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save equipment category")
	}

	return nil
}

// Delete removes a category by id.
func (repo *equipmentCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EquipmentCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("category is still referenced by equipment")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete equipment category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEquipmentCategoryNotFound
	}

	return nil
}

func toEquipmentCategoryDomain(data *model.EquipmentCategoryModel) *entity.EquipmentCategory {
	return &entity.EquipmentCategory{
		ID:            data.ID,
		CategoryMajor: data.CategoryMajor,
		CategoryMinor: data.CategoryMinor,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromEquipmentCategoryDomain(data *entity.EquipmentCategory) *model.EquipmentCategoryModel {
	return &model.EquipmentCategoryModel{
		ID:            data.ID,
		CategoryMajor: data.CategoryMajor,
		CategoryMinor: data.CategoryMinor,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
