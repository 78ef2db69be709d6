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

// settingServiceFixtures holds all test dependencies for setting service tests.
type settingServiceFixtures struct {
	service  usecase.SettingUsecase
	users    *mockRepo.MockUserRepository
	settings *mockRepo.MockSystemSettingRepository
}

func createTestSettingService(t *testing.T) settingServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	settings := mockRepo.NewMockSystemSettingRepository(t)
	service := NewSettingService(users, settings, newStubViewCache(), testLogger())

	return settingServiceFixtures{
		service:  service,
		users:    users,
		settings: settings,
	}
}

func TestSettingService_PutSetting_ValidTimezone(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.settings.On("FindByKey", ctx, "timezone").Return(nil, repository.ErrSystemSettingNotFound)

	var saved *entity.SystemSetting
	fx.settings.On("Save", ctx, mock.AnythingOfType("*entity.SystemSetting")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.SystemSetting)
		}).
		Return(nil)

	setting, err := fx.service.PutSetting(ctx, admin.ID, &usecase.PutSettingInput{
		Key:   "timezone",
		Value: "Asia/Tokyo",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Asia/Tokyo", saved.Value)
	require.NotNil(t, setting.UpdatedBy)
	assert.Equal(t, admin.ID, *setting.UpdatedBy)
}

func TestSettingService_PutSetting_InvalidTimezoneStopsBeforeSave(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.settings.On("FindByKey", ctx, "timezone").Return(nil, repository.ErrSystemSettingNotFound)

	// No Save expectation: the bad zone never reaches the repository.
	_, err := fx.service.PutSetting(ctx, admin.ID, &usecase.PutSettingInput{
		Key:   "timezone",
		Value: "Not/AZone",
	})

	require.Error(t, err)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "Invalid timezone")
}

func TestSettingService_PutSetting_ExistingKeyKeepsID(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)
	existing := &entity.SystemSetting{ID: uuid.New(), Key: "motd", Value: "old"}

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.settings.On("FindByKey", ctx, "motd").Return(existing, nil)

	var saved *entity.SystemSetting
	fx.settings.On("Save", ctx, mock.AnythingOfType("*entity.SystemSetting")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.SystemSetting)
		}).
		Return(nil)

	_, err := fx.service.PutSetting(ctx, admin.ID, &usecase.PutSettingInput{
		Key:   "motd",
		Value: "new",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, existing.ID, saved.ID)
	assert.Equal(t, "new", saved.Value)
}

func TestSettingService_PutSetting_EditorForbidden(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)

	_, err := fx.service.PutSetting(ctx, editor.ID, &usecase.PutSettingInput{
		Key:   "motd",
		Value: "hello",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSettingService_GetSetting_NotFound(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()

	fx.settings.On("FindByKey", ctx, "missing").Return(nil, repository.ErrSystemSettingNotFound)

	_, err := fx.service.GetSetting(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
