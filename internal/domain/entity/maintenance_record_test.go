package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaintenanceRecord_Success(t *testing.T) {
	equipmentID := uuid.New()
	cost := 12500
	performedAt := time.Now().Add(-24 * time.Hour)

	record, err := NewMaintenanceRecord(uuid.New(), equipmentID, "Replaced lamp", performedAt, &cost, time.Now())
	require.NoError(t, err)
	assert.Equal(t, equipmentID, record.EquipmentID)
	assert.Equal(t, performedAt, record.PerformedAt)
	require.NotNil(t, record.CostCents)
	assert.Equal(t, 12500, *record.CostCents)
}

func TestNewMaintenanceRecord_PerformedAtRequired(t *testing.T) {
	record, err := NewMaintenanceRecord(uuid.New(), uuid.New(), "Replaced lamp", time.Time{}, nil, time.Now())
	assert.Nil(t, record)
	require.Error(t, err)
	assert.Equal(t, "performedAt is required", err.Error())
}

func TestNewMaintenanceRecord_NegativeCost(t *testing.T) {
	negative := -1
	record, err := NewMaintenanceRecord(uuid.New(), uuid.New(), "Replaced lamp", time.Now(), &negative, time.Now())
	assert.Nil(t, record)
	require.Error(t, err)
	assert.Equal(t, "costCents must be a non-negative integer", err.Error())
}

func TestNewMaintenanceRecord_NilCostAllowed(t *testing.T) {
	record, err := NewMaintenanceRecord(uuid.New(), uuid.New(), "Inspection", time.Now(), nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, record.CostCents)
}
