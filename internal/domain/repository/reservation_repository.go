package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines the standard operations for reservation persistence.
type ReservationRepository interface {
	// FindByID retrieves a single reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindByEquipment retrieves the reservations of a piece of equipment,
	// ordered by start time.
	FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.Reservation, error)

	// Save upserts a reservation.
	Save(ctx context.Context, reservation *entity.Reservation) error

	// Delete removes a reservation by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
