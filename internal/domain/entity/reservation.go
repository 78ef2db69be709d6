package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation books a piece of equipment for a time range.
type Reservation struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	UserID      uuid.UUID
	Purpose     string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReservation validates the supplied fields and returns an immutable
// reservation value. Overlap detection belongs to the storage layer.
func NewReservation(id, equipmentID, userID uuid.UUID, purpose string, startsAt, endsAt, now time.Time) (*Reservation, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	if err := requiredID("equipmentId", equipmentID); err != nil {
		return nil, err
	}

	if err := requiredID("userId", userID); err != nil {
		return nil, err
	}

	trimmedPurpose, err := requiredText("purpose", purpose)
	if err != nil {
		return nil, err
	}

	if startsAt.IsZero() {
		return nil, NewValidationError("startsAt is required")
	}

	if endsAt.IsZero() {
		return nil, NewValidationError("endsAt is required")
	}

	if !startsAt.Before(endsAt) {
		return nil, NewValidationError("startsAt must be before endsAt")
	}

	return &Reservation{
		ID:          id,
		EquipmentID: equipmentID,
		UserID:      userID,
		Purpose:     trimmedPurpose,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
