package entity

import (
	"time"

	"github.com/google/uuid"
)

// SettingKeyTimezone is the reserved key whose value must name an IANA time
// zone the platform can resolve.
const SettingKeyTimezone = "timezone"

// SystemSetting is a global key/value pair such as the dashboard's timezone.
type SystemSetting struct {
	ID        uuid.UUID
	Key       string
	Value     string
	UpdatedAt time.Time
	UpdatedBy *uuid.UUID // User who last changed the value; nil for seeded rows.
}

// NewSystemSetting validates the supplied fields and returns an immutable
// setting value. The timezone key additionally requires its value to resolve
// as an IANA zone via time.LoadLocation.
func NewSystemSetting(id uuid.UUID, key, value string, updatedAt time.Time, updatedBy *uuid.UUID) (*SystemSetting, error) {
	if err := requiredID("id", id); err != nil {
		return nil, err
	}

	trimmedKey, err := requiredText("key", key)
	if err != nil {
		return nil, err
	}

	trimmedValue, err := requiredText("value", value)
	if err != nil {
		return nil, err
	}

	if trimmedKey == SettingKeyTimezone {
		if _, err := time.LoadLocation(trimmedValue); err != nil {
			return nil, NewValidationError("Invalid timezone: %s", trimmedValue)
		}
	}

	return &SystemSetting{
		ID:        id,
		Key:       trimmedKey,
		Value:     trimmedValue,
		UpdatedAt: updatedAt,
		UpdatedBy: updatedBy,
	}, nil
}
