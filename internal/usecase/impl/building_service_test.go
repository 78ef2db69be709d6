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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buildingServiceFixtures holds all test dependencies for building service tests.
type buildingServiceFixtures struct {
	service   usecase.BuildingUsecase
	users     *mockRepo.MockUserRepository
	buildings *mockRepo.MockBuildingRepository
	views     *stubViewCache
}

func createTestBuildingService(t *testing.T) buildingServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	buildings := mockRepo.NewMockBuildingRepository(t)
	views := newStubViewCache()
	service := NewBuildingService(users, buildings, views, testLogger())

	return buildingServiceFixtures{
		service:   service,
		users:     users,
		buildings: buildings,
		views:     views,
	}
}

func TestBuildingService_CreateBuilding_Success(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)
	address := "1 Campus Way"

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.buildings.On("Save", ctx, mock.AnythingOfType("*entity.Building")).Return(nil)

	building, err := fx.service.CreateBuilding(ctx, admin.ID, &usecase.CreateBuildingInput{
		Name:    "North Tower",
		Address: &address,
	})

	require.NoError(t, err)
	assert.Equal(t, "North Tower", building.Name)
	require.NotNil(t, building.Address)
	assert.Equal(t, address, *building.Address)
	assert.NotEqual(t, uuid.Nil, building.ID)
}

func TestBuildingService_CreateBuilding_Unauthenticated(t *testing.T) {
	fx := createTestBuildingService(t)

	// No Save expectation: the repository must never be touched.
	building, err := fx.service.CreateBuilding(context.Background(), uuid.Nil, &usecase.CreateBuildingInput{
		Name: "North Tower",
	})

	require.Error(t, err)
	assert.Nil(t, building)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestBuildingService_CreateBuilding_MemberForbidden(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)

	_, err := fx.service.CreateBuilding(ctx, member.ID, &usecase.CreateBuildingInput{
		Name: "North Tower",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBuildingService_CreateBuilding_UnknownActorUnauthorized(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	ghostID := uuid.New()

	fx.users.On("FindByID", ctx, ghostID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateBuilding(ctx, ghostID, &usecase.CreateBuildingInput{
		Name: "North Tower",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestBuildingService_CreateBuilding_ValidationStopsBeforeSave(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)

	_, err := fx.service.CreateBuilding(ctx, editor.ID, &usecase.CreateBuildingInput{
		Name: "   ",
	})

	require.Error(t, err)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name is required", validationErr.Error())
}

func TestBuildingService_UpdateBuilding_NotFound(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)
	buildingID := uuid.New()

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)
	fx.buildings.On("FindByID", ctx, buildingID).Return(nil, repository.ErrBuildingNotFound)

	_, err := fx.service.UpdateBuilding(ctx, editor.ID, buildingID, &usecase.UpdateBuildingInput{
		Name: "Renamed Tower",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBuildingService_UpdateBuilding_InvalidatesCachedViews(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)
	existing := &entity.Building{ID: uuid.New(), Name: "Old Name"}

	fx.views.Set(viewBuildings, []*entity.Building{existing})

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)
	fx.buildings.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.buildings.On("Save", ctx, mock.AnythingOfType("*entity.Building")).Return(nil)

	updated, err := fx.service.UpdateBuilding(ctx, editor.ID, existing.ID, &usecase.UpdateBuildingInput{
		Name: "New Name",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	_, stillCached := fx.views.Get(viewBuildings)
	assert.False(t, stillCached)
}

func TestBuildingService_UpdateBuilding_RepeatedUpdateIsIdempotent(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)
	existing := &entity.Building{ID: uuid.New(), Name: "Old Name"}

	var saved *entity.Building
	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)
	fx.buildings.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.buildings.On("Save", ctx, mock.AnythingOfType("*entity.Building")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.Building)
		}).
		Return(nil)

	input := &usecase.UpdateBuildingInput{Name: "New Name"}

	first, err := fx.service.UpdateBuilding(ctx, editor.ID, existing.ID, input)
	require.NoError(t, err)
	firstSaved := saved

	second, err := fx.service.UpdateBuilding(ctx, editor.ID, existing.ID, input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, firstSaved.ID, saved.ID)
	assert.Equal(t, firstSaved.Name, saved.Name)
	assert.Equal(t, firstSaved.CreatedAt, saved.CreatedAt)
}

func TestBuildingService_DeleteBuilding_Success(t *testing.T) {
	fx := createTestBuildingService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)
	buildingID := uuid.New()

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.buildings.On("Delete", ctx, buildingID).Return(nil)

	err := fx.service.DeleteBuilding(ctx, admin.ID, buildingID)

	require.NoError(t, err)
}

func TestBuildingService_ListBuildings_ServesCachedView(t *testing.T) {
	fx := createTestBuildingService(t)

	cached := []*entity.Building{{ID: uuid.New(), Name: "Cached Tower"}}
	fx.views.Set(viewBuildings, cached)

	// No FindAll expectation: a warm view skips the repository.
	buildings, err := fx.service.ListBuildings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, buildings)
}
