package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilding_Success(t *testing.T) {
	id := uuid.New()
	address := "12 Harbor Way"
	now := time.Now()

	building, err := NewBuilding(id, "North Tower", &address, now)
	require.NoError(t, err)
	assert.Equal(t, id, building.ID)
	assert.Equal(t, "North Tower", building.Name)
	require.NotNil(t, building.Address)
	assert.Equal(t, address, *building.Address)
	assert.Equal(t, now, building.CreatedAt)
}

func TestNewBuilding_NilAddress(t *testing.T) {
	building, err := NewBuilding(uuid.New(), "Annex", nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, building.Address)
}

func TestNewBuilding_NameRequired(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		building, err := NewBuilding(uuid.New(), name, nil, time.Now())
		assert.Nil(t, building)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name is required", validationErr.Error())
	}
}

func TestNewBuilding_TrimsName(t *testing.T) {
	building, err := NewBuilding(uuid.New(), "  West Wing  ", nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "West Wing", building.Name)
}
