package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord documents service work performed on a piece of equipment.
type MaintenanceRecord struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	Description string
	PerformedAt time.Time
	CostCents   *int // Cost in cents; nil when not recorded.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMaintenanceRecord validates the supplied fields and returns an immutable
// maintenance record value.
func NewMaintenanceRecord(id, equipmentID uuid.UUID, description string, performedAt time.Time, costCents *int, now time.Time) (*MaintenanceRecord, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	if err := requiredID("equipmentId", equipmentID); err != nil {
		return nil, err
	}

	trimmedDescription, err := requiredText("description", description)
	if err != nil {
		return nil, err
	}

	if performedAt.IsZero() {
		return nil, NewValidationError("performedAt is required")
	}

	if err := optionalNonNegative("costCents", costCents); err != nil {
		return nil, err
	}

	return &MaintenanceRecord{
		ID:          id,
		EquipmentID: equipmentID,
		Description: trimmedDescription,
		PerformedAt: performedAt,
		CostCents:   costCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
