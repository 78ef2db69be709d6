package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloor_Success(t *testing.T) {
	buildingID := uuid.New()
	number := 2

	floor, err := NewFloor(uuid.New(), "  2F  ", buildingID, &number, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2F", floor.Name)
	assert.Equal(t, buildingID, floor.BuildingID)
	require.NotNil(t, floor.FloorNumber)
	assert.Equal(t, 2, *floor.FloorNumber)
}

func TestNewFloor_BuildingRequired(t *testing.T) {
	floor, err := NewFloor(uuid.New(), "2F", uuid.Nil, nil, time.Now())
	assert.Nil(t, floor)
	require.Error(t, err)
	assert.Equal(t, "buildingId is required", err.Error())
}

func TestNewFloor_NegativeFloorNumber(t *testing.T) {
	negative := -3
	floor, err := NewFloor(uuid.New(), "Basement", uuid.New(), &negative, time.Now())
	assert.Nil(t, floor)
	require.Error(t, err)
	assert.Equal(t, "floorNumber must be a non-negative integer", err.Error())
}

func TestNewFloor_NilFloorNumberAllowed(t *testing.T) {
	floor, err := NewFloor(uuid.New(), "Mezzanine", uuid.New(), nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, floor.FloorNumber)
}
