package usecase

import (
	"context"
	"time"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// MaintenanceUsecase defines the interface for maintenance record operations.
type MaintenanceUsecase interface {
	ListMaintenanceRecords(ctx context.Context, equipmentID uuid.UUID) ([]*entity.MaintenanceRecord, error)
	CreateMaintenanceRecord(ctx context.Context, actorID uuid.UUID, input *CreateMaintenanceRecordInput) (*entity.MaintenanceRecord, error)
	UpdateMaintenanceRecord(ctx context.Context, actorID, id uuid.UUID, input *UpdateMaintenanceRecordInput) (*entity.MaintenanceRecord, error)
	DeleteMaintenanceRecord(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateMaintenanceRecordInput defines the data required to log service work.
type CreateMaintenanceRecordInput struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Description string    `json:"description"`
	PerformedAt time.Time `json:"performed_at"`
	CostCents   *int      `json:"cost_cents,omitempty"`
}

// UpdateMaintenanceRecordInput defines the data required to amend a record.
type UpdateMaintenanceRecordInput struct {
	Description string    `json:"description"`
	PerformedAt time.Time `json:"performed_at"`
	CostCents   *int      `json:"cost_cents,omitempty"`
}
