package impl

import (
	"context"
	"testing"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	mockRepo "atrium/internal/mocks/repository"
	mockService "atrium/internal/mocks/service"
	"atrium/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	users   *mockRepo.MockUserRepository
	tokens  *mockService.MockTokenService
	hasher  *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	tokens := mockService.NewMockTokenService(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewUserService(users, tokens, hasher, newStubViewCache(), testLogger())

	return userServiceFixtures{
		service: service,
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
	}
}

func TestUserService_Register_FirstAccountBecomesAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.users.On("FindByEmail", ctx, "first@example.com").Return(nil, repository.ErrUserNotFound)
	fx.users.On("FindAll", ctx).Return([]*entity.User{}, nil)
	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)

	var saved *entity.User
	fx.users.On("Save", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.User)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "First Admin",
		Email:    "first@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, entity.RoleAdmin, saved.Role)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
	assert.Equal(t, "hashed-password", saved.PasswordHash)
}

func TestUserService_Register_LaterAccountsAreMembers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.users.On("FindByEmail", ctx, "second@example.com").Return(nil, repository.ErrUserNotFound)
	fx.users.On("FindAll", ctx).Return([]*entity.User{testUser(entity.RoleAdmin)}, nil)
	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)
	fx.users.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Second User",
		Email:    "second@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, output.User.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := testUser(entity.RoleMember)

	fx.users.On("FindByEmail", ctx, existing.Email).Return(existing, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Impostor",
		Email:    existing.Email,
		Password: "hunter22",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser(entity.RoleEditor)

	fx.users.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "hunter22", user.PasswordHash).Return(true)
	fx.tokens.On("GenerateTokens", user.ID, "editor").Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser(entity.RoleMember)

	fx.users.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser(entity.RoleMember)

	fx.tokens.On("ValidateRefreshToken", "refresh-token").
		Return(jwt.MapClaims{"sub": user.ID.String()}, nil)
	fx.users.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.tokens.On("GenerateTokens", user.ID, "member").Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_DeletedAccountRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokens.On("ValidateRefreshToken", "refresh-token").
		Return(jwt.MapClaims{"sub": userID.String()}, nil)
	fx.users.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Refresh(ctx, "refresh-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)
	target := testUser(entity.RoleMember)

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.users.On("FindByID", ctx, target.ID).Return(target, nil)
	fx.users.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.ChangeRole(ctx, admin.ID, target.ID, entity.RoleEditor)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, updated.Role)
}

func TestUserService_ChangeRole_NonAdminForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)

	_, err := fx.service.ChangeRole(ctx, editor.ID, uuid.New(), entity.RoleAdmin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ChangeRole_SelfDemotionForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := testUser(entity.RoleAdmin)

	fx.users.On("FindByID", ctx, admin.ID).Return(admin, nil)

	_, err := fx.service.ChangeRole(ctx, admin.ID, admin.ID, entity.RoleMember)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ListUsers_AdminOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)

	_, err := fx.service.ListUsers(ctx, member.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
