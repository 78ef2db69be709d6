package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Success(t *testing.T) {
	id := uuid.New()

	user, err := NewUser(id, "kim@example.com", "Kim", "$2a$10$hash", RoleEditor, time.Now())
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, RoleEditor, user.Role)
	assert.Empty(t, user.Favorites)
}

func TestNewUser_InvalidRole(t *testing.T) {
	user, err := NewUser(uuid.New(), "kim@example.com", "Kim", "$2a$10$hash", Role("owner"), time.Now())
	assert.Nil(t, user)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNewUser_EmailRequired(t *testing.T) {
	user, err := NewUser(uuid.New(), "  ", "Kim", "$2a$10$hash", RoleMember, time.Now())
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Equal(t, "email is required", err.Error())
}

func TestUser_HasFavorite(t *testing.T) {
	equipmentID := uuid.New()
	user := &User{ID: uuid.New(), Favorites: []uuid.UUID{equipmentID}}

	assert.True(t, user.HasFavorite(equipmentID))
	assert.False(t, user.HasFavorite(uuid.New()))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleEditor.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("root").IsValid())
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = RoleFromString("superuser")
	assert.False(t, ok)
}
