package impl

import (
	"context"
	"testing"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	mockRepo "atrium/internal/mocks/repository"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service   usecase.FavoriteUsecase
	users     *mockRepo.MockUserRepository
	equipment *mockRepo.MockEquipmentRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	equipment := mockRepo.NewMockEquipmentRepository(t)
	service := NewFavoriteService(users, equipment, testLogger())

	return favoriteServiceFixtures{
		service:   service,
		users:     users,
		equipment: equipment,
	}
}

func TestFavoriteService_ToggleFavorite_AddsWhenAbsent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	equipmentID := uuid.New()

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.equipment.On("FindByID", ctx, equipmentID).Return(&entity.Equipment{ID: equipmentID}, nil)
	fx.users.On("AddFavorite", ctx, member.ID, equipmentID).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, member.ID, equipmentID)

	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_ToggleFavorite_RemovesWhenPresent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	equipmentID := uuid.New()
	member.Favorites = []uuid.UUID{equipmentID}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.equipment.On("FindByID", ctx, equipmentID).Return(&entity.Equipment{ID: equipmentID}, nil)
	fx.users.On("RemoveFavorite", ctx, member.ID, equipmentID).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, member.ID, equipmentID)

	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ToggleFavorite_DoubleToggleRoundTrips(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	equipmentID := uuid.New()

	// First call sees an empty set, second call sees the stored favorite.
	fx.users.On("FindByID", ctx, member.ID).Return(member, nil).Once()
	fx.equipment.On("FindByID", ctx, equipmentID).Return(&entity.Equipment{ID: equipmentID}, nil).Twice()
	fx.users.On("AddFavorite", ctx, member.ID, equipmentID).Return(nil).Once()

	favorited, err := fx.service.ToggleFavorite(ctx, member.ID, equipmentID)
	require.NoError(t, err)
	assert.True(t, favorited)

	withFavorite := *member
	withFavorite.Favorites = []uuid.UUID{equipmentID}
	fx.users.On("FindByID", ctx, member.ID).Return(&withFavorite, nil).Once()
	fx.users.On("RemoveFavorite", ctx, member.ID, equipmentID).Return(nil).Once()

	favorited, err = fx.service.ToggleFavorite(ctx, member.ID, equipmentID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ToggleFavorite_UnknownEquipment(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	equipmentID := uuid.New()

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.equipment.On("FindByID", ctx, equipmentID).Return(nil, repository.ErrEquipmentNotFound)

	_, err := fx.service.ToggleFavorite(ctx, member.ID, equipmentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFavoriteService_ToggleFavorite_Unauthenticated(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.ToggleFavorite(context.Background(), uuid.Nil, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	member.Favorites = []uuid.UUID{uuid.New(), uuid.New()}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)

	favorites, err := fx.service.ListFavorites(ctx, member.ID)

	require.NoError(t, err)
	assert.Equal(t, member.Favorites, favorites)
}
