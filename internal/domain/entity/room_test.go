package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom_Success(t *testing.T) {
	id := uuid.New()
	floorID := uuid.New()
	capacity := 10

	room, err := NewRoom(id, "Room A", floorID, &capacity, time.Now())
	require.NoError(t, err)
	assert.Equal(t, id, room.ID)
	assert.Equal(t, "Room A", room.Name)
	assert.Equal(t, floorID, room.FloorID)
	require.NotNil(t, room.Capacity)
	assert.Equal(t, 10, *room.Capacity)
}

func TestNewRoom_NameRequired(t *testing.T) {
	room, err := NewRoom(uuid.New(), "  ", uuid.New(), nil, time.Now())
	assert.Nil(t, room)
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestNewRoom_FloorRequired(t *testing.T) {
	room, err := NewRoom(uuid.New(), "Room B", uuid.Nil, nil, time.Now())
	assert.Nil(t, room)
	require.Error(t, err)
	assert.Equal(t, "floorId is required", err.Error())
}

func TestNewRoom_NegativeCapacity(t *testing.T) {
	negative := -1
	room, err := NewRoom(uuid.New(), "Room C", uuid.New(), &negative, time.Now())
	assert.Nil(t, room)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "capacity must be a non-negative integer", validationErr.Error())
}

func TestNewRoom_ZeroCapacity(t *testing.T) {
	zero := 0
	room, err := NewRoom(uuid.New(), "Storage", uuid.New(), &zero, time.Now())
	require.NoError(t, err)
	require.NotNil(t, room.Capacity)
	assert.Equal(t, 0, *room.Capacity)
}
