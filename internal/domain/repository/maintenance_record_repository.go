package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMaintenanceRecordNotFound is returned when a maintenance record is not found.
var ErrMaintenanceRecordNotFound = errors.New("maintenance record not found")

// MaintenanceRecordRepository defines the standard operations for maintenance
// record persistence.
type MaintenanceRecordRepository interface {
	// FindByID retrieves a single maintenance record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error)

	// FindByEquipment retrieves the maintenance history of a piece of
	// equipment, newest first.
	FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.MaintenanceRecord, error)

	// Save upserts a maintenance record.
	Save(ctx context.Context, record *entity.MaintenanceRecord) error

	// Delete removes a maintenance record by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
