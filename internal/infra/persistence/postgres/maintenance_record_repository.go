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

// maintenanceRecordRepository implements the repository.MaintenanceRecordRepository interface.
type maintenanceRecordRepository struct {
	db *gorm.DB
}

// NewMaintenanceRecordRepository is the constructor for maintenanceRecordRepository.
func NewMaintenanceRecordRepository(db *gorm.DB) repository.MaintenanceRecordRepository {
	return &maintenanceRecordRepository{
		db: db,
	}
}

// FindByID retrieves a maintenance record by its unique ID.
func (repo *maintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error) {
	var recordM model.MaintenanceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaintenanceRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find maintenance record by ID")
	}

	return toMaintenanceRecordDomain(&recordM), nil
}

// FindByEquipment retrieves the maintenance history of a piece of equipment, newest first.
func (repo *maintenanceRecordRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	var recordModels []*model.MaintenanceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("performed_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find maintenance records by equipment")
	}

	records := make([]*entity.MaintenanceRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toMaintenanceRecordDomain(recordM))
	}

	return records, nil
}

// Save upserts a maintenance record.
func (repo *maintenanceRecordRepository) Save(ctx context.Context, record *entity.MaintenanceRecord) error {
	recordM := fromMaintenanceRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEquipmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save maintenance record")
	}

	return nil
}

// Delete removes a maintenance record by id.
func (repo *maintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MaintenanceRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete maintenance record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMaintenanceRecordNotFound
	}

	return nil
}

func toMaintenanceRecordDomain(data *model.MaintenanceRecordModel) *entity.MaintenanceRecord {
	return &entity.MaintenanceRecord{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		Description: data.Description,
		PerformedAt: data.PerformedAt,
		CostCents:   data.CostCents,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromMaintenanceRecordDomain(data *entity.MaintenanceRecord) *model.MaintenanceRecordModel {
	return &model.MaintenanceRecordModel{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		Description: data.Description,
		PerformedAt: data.PerformedAt,
		CostCents:   data.CostCents,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
