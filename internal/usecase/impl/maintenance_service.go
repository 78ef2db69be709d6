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

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	gate    actorGate
	records repository.MaintenanceRecordRepository
	views   service.ViewCache
	logger  *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(
	userRepo repository.UserRepository,
	recordRepo repository.MaintenanceRecordRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.MaintenanceUsecase {
	return &maintenanceService{
		gate:    actorGate{users: userRepo},
		records: recordRepo,
		views:   views,
		logger:  logger,
	}
}

// ListMaintenanceRecords retrieves the maintenance history of a piece of
// equipment, newest first.
func (srv *maintenanceService) ListMaintenanceRecords(ctx context.Context, equipmentID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	records, err := srv.records.FindByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list maintenance records")
	}

	return records, nil
}

// CreateMaintenanceRecord validates and persists a service-work entry.
func (srv *maintenanceService) CreateMaintenanceRecord(ctx context.Context, actorID uuid.UUID, input *usecase.CreateMaintenanceRecordInput) (*entity.MaintenanceRecord, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	record, err := entity.NewMaintenanceRecord(uuid.New(), input.EquipmentID, input.Description, input.PerformedAt, input.CostCents, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.records.Save(ctx, record); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return nil, errors.Wrap(err, "failed to create maintenance record")
	}

	srv.logger.Info("Maintenance record created", "recordID", record.ID, "equipmentID", record.EquipmentID, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(record.EquipmentID))

	return record, nil
}

// UpdateMaintenanceRecord validates and persists changes to a record. The
// equipment a record documents never changes.
func (srv *maintenanceService) UpdateMaintenanceRecord(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateMaintenanceRecordInput) (*entity.MaintenanceRecord, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.records.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("maintenance record not found")
		}

		return nil, errors.Wrap(err, "failed to find maintenance record")
	}

	record, err := entity.NewMaintenanceRecord(id, existing.EquipmentID, input.Description, input.PerformedAt, input.CostCents, time.Now())
	if err != nil {
		return nil, err
	}
	record.CreatedAt = existing.CreatedAt

	if err := srv.records.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update maintenance record")
	}

	srv.logger.Info("Maintenance record updated", "recordID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(record.EquipmentID))

	return record, nil
}

// DeleteMaintenanceRecord removes a maintenance record.
func (srv *maintenanceService) DeleteMaintenanceRecord(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return err
	}

	existing, err := srv.records.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceRecordNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("maintenance record not found")
		}

		return errors.Wrap(err, "failed to find maintenance record")
	}

	if err := srv.records.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMaintenanceRecordNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("maintenance record not found")
		}

		return errors.Wrap(err, "failed to delete maintenance record")
	}

	srv.logger.Info("Maintenance record deleted", "recordID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(existing.EquipmentID))

	return nil
}
