package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation_Success(t *testing.T) {
	now := time.Now()
	startsAt := now.Add(time.Hour)
	endsAt := now.Add(2 * time.Hour)

	reservation, err := NewReservation(uuid.New(), uuid.New(), uuid.New(), "Team demo", startsAt, endsAt, now)
	require.NoError(t, err)
	assert.Equal(t, "Team demo", reservation.Purpose)
	assert.Equal(t, startsAt, reservation.StartsAt)
	assert.Equal(t, endsAt, reservation.EndsAt)
}

func TestNewReservation_StartMustPrecedeEnd(t *testing.T) {
	now := time.Now()

	reservation, err := NewReservation(uuid.New(), uuid.New(), uuid.New(), "Demo", now.Add(2*time.Hour), now.Add(time.Hour), now)
	assert.Nil(t, reservation)
	require.Error(t, err)
	assert.Equal(t, "startsAt must be before endsAt", err.Error())

	// Equal boundaries are rejected as well.
	at := now.Add(time.Hour)
	reservation, err = NewReservation(uuid.New(), uuid.New(), uuid.New(), "Demo", at, at, now)
	assert.Nil(t, reservation)
	require.Error(t, err)
}

func TestNewReservation_PurposeRequired(t *testing.T) {
	now := time.Now()

	reservation, err := NewReservation(uuid.New(), uuid.New(), uuid.New(), "  ", now, now.Add(time.Hour), now)
	assert.Nil(t, reservation)
	require.Error(t, err)
	assert.Equal(t, "purpose is required", err.Error())
}
