package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquipment_Success(t *testing.T) {
	categoryID := uuid.New()
	roomID := uuid.New()

	equipment, err := NewEquipment(uuid.New(), "Projector X1", categoryID, roomID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Projector X1", equipment.Name)
	assert.Equal(t, categoryID, equipment.CategoryID)
	assert.Equal(t, roomID, equipment.RoomID)
}

func TestNewEquipment_NameRequired(t *testing.T) {
	equipment, err := NewEquipment(uuid.New(), "   ", uuid.New(), uuid.New(), time.Now())
	assert.Nil(t, equipment)
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestNewEquipment_CategoryRequired(t *testing.T) {
	equipment, err := NewEquipment(uuid.New(), "Projector X1", uuid.Nil, uuid.New(), time.Now())
	assert.Nil(t, equipment)
	require.Error(t, err)
	assert.Equal(t, "categoryId is required", err.Error())
}

func TestNewEquipment_RoomRequired(t *testing.T) {
	equipment, err := NewEquipment(uuid.New(), "Projector X1", uuid.New(), uuid.Nil, time.Now())
	assert.Nil(t, equipment)
	require.Error(t, err)
	assert.Equal(t, "roomId is required", err.Error())
}
