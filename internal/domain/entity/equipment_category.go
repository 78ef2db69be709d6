package entity

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentCategory classifies equipment on two levels, e.g. major "AV" with
// minor "Projector".
type EquipmentCategory struct {
	ID            uuid.UUID
	CategoryMajor string
	CategoryMinor string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewEquipmentCategory validates the supplied fields and returns an immutable
// category value.
func NewEquipmentCategory(id uuid.UUID, categoryMajor, categoryMinor string, now time.Time) (*EquipmentCategory, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedMajor, err := requiredText("categoryMajor", categoryMajor)
	if err != nil {
		return nil, err
	}

	trimmedMinor, err := requiredText("categoryMinor", categoryMinor)
	if err != nil {
		return nil, err
	}

	return &EquipmentCategory{
		ID:            id,
		CategoryMajor: trimmedMajor,
		CategoryMinor: trimmedMinor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
