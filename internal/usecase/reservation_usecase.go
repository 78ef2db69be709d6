package usecase

import (
	"context"
	"time"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ReservationUsecase defines the interface for reservation operations.
// Any authenticated user may reserve equipment; owners and editorial roles
// may cancel.
type ReservationUsecase interface {
	ListReservations(ctx context.Context, equipmentID uuid.UUID) ([]*entity.Reservation, error)
	CreateReservation(ctx context.Context, actorID uuid.UUID, input *CreateReservationInput) (*entity.Reservation, error)
	CancelReservation(ctx context.Context, actorID, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateReservationInput defines the data required to reserve equipment.
type CreateReservationInput struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Purpose     string    `json:"purpose"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}
