package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemSetting_Success(t *testing.T) {
	id := uuid.New()
	updatedBy := uuid.New()
	now := time.Now()

	setting, err := NewSystemSetting(id, "displayName", "Atrium HQ", now, &updatedBy)
	require.NoError(t, err)
	assert.Equal(t, id, setting.ID)
	assert.Equal(t, "displayName", setting.Key)
	assert.Equal(t, "Atrium HQ", setting.Value)
	require.NotNil(t, setting.UpdatedBy)
	assert.Equal(t, updatedBy, *setting.UpdatedBy)
}

func TestNewSystemSetting_KeyRequired(t *testing.T) {
	setting, err := NewSystemSetting(uuid.New(), " ", "value", time.Now(), nil)
	assert.Nil(t, setting)
	require.Error(t, err)
	assert.Equal(t, "key is required", err.Error())
}

func TestNewSystemSetting_ValueRequired(t *testing.T) {
	setting, err := NewSystemSetting(uuid.New(), "timezone", "", time.Now(), nil)
	assert.Nil(t, setting)
	require.Error(t, err)
	assert.Equal(t, "value is required", err.Error())
}

func TestNewSystemSetting_ValidTimezones(t *testing.T) {
	for _, zone := range []string{"UTC", "Asia/Tokyo", "America/New_York"} {
		setting, err := NewSystemSetting(uuid.New(), SettingKeyTimezone, zone, time.Now(), nil)
		require.NoError(t, err, zone)
		assert.Equal(t, zone, setting.Value)
	}
}

func TestNewSystemSetting_InvalidTimezone(t *testing.T) {
	setting, err := NewSystemSetting(uuid.New(), SettingKeyTimezone, "Not/AZone", time.Now(), nil)
	assert.Nil(t, setting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid timezone")
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestNewSystemSetting_TimezoneCheckOnlyForReservedKey(t *testing.T) {
	// A non-timezone key may carry any non-empty value.
	setting, err := NewSystemSetting(uuid.New(), "motd", "Not/AZone", time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Not/AZone", setting.Value)
}
