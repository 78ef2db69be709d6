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

// equipmentCommentRepository implements the repository.EquipmentCommentRepository interface.
type equipmentCommentRepository struct {
	db *gorm.DB
}

// NewEquipmentCommentRepository is the constructor for equipmentCommentRepository.
func NewEquipmentCommentRepository(db *gorm.DB) repository.EquipmentCommentRepository {
	return &equipmentCommentRepository{
		db: db,
	}
}

// FindByID retrieves a comment by its unique ID.
func (repo *equipmentCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentComment, error) {
	var commentM model.EquipmentCommentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toEquipmentCommentDomain(&commentM), nil
}

// FindByEquipment retrieves the comments on a piece of equipment, newest first.
func (repo *equipmentCommentRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.EquipmentComment, error) {
	var commentModels []*model.EquipmentCommentModel

	if err := repo.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments by equipment")
	}

	comments := make([]*entity.EquipmentComment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toEquipmentCommentDomain(commentM))
	}

	return comments, nil
}

// Save upserts a comment.
func (repo *equipmentCommentRepository) Save(ctx context.Context, comment *entity.EquipmentComment) error {
	commentM := fromEquipmentCommentDomain(comment)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("equipment or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save comment")
	}

	return nil
}

// Delete removes a comment by id.
func (repo *equipmentCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EquipmentCommentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEquipmentCommentNotFound
	}

	return nil
}

func toEquipmentCommentDomain(data *model.EquipmentCommentModel) *entity.EquipmentComment {
	return &entity.EquipmentComment{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		UserID:      data.UserID,
		Content:     data.Content,
		CreatedAt:   data.CreatedAt,
	}
}

func fromEquipmentCommentDomain(data *entity.EquipmentComment) *model.EquipmentCommentModel {
	return &model.EquipmentCommentModel{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		UserID:      data.UserID,
		Content:     data.Content,
		CreatedAt:   data.CreatedAt,
	}
}
