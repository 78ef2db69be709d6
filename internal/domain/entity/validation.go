package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError reports the first invariant violated while constructing an
// entity. The message is safe to surface to callers verbatim.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

// requiredText trims the value and rejects it when nothing remains.
// The trimmed value is what gets stored on the entity.
func requiredText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError("%s is required", field)
	}

	return trimmed, nil
}

// requiredID rejects the zero UUID for foreign-key-shaped fields. Referential
// existence is the storage layer's concern, not the constructor's.
func requiredID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError("%s is required", field)
	}

	return nil
}

// optionalNonNegative accepts an absent value and rejects negative ones.
func optionalNonNegative(field string, value *int) error {
	if value != nil && *value < 0 {
		return NewValidationError("%s must be a non-negative integer", field)
	}

	return nil
}
