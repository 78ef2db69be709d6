package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atrium/internal/delivery/context"
	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	gate   actorGate
	users  repository.UserRepository
	tokens service.TokenService
	hasher service.PasswordHasher
	views  service.ViewCache
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		gate:   actorGate{users: userRepo},
		users:  userRepo,
		tokens: tokens,
		hasher: hasher,
		views:  views,
		logger: logger,
	}
}

// log returns the request-scoped logger when present, otherwise the service logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The very first account on the platform
// becomes an administrator so a fresh install is immediately manageable;
// every later account starts as a member.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if _, err := srv.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	role := entity.RoleMember
	existing, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}
	if len(existing) == 0 {
		role = entity.RoleAdmin
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := entity.NewUser(uuid.New(), input.Email, input.Name, hash, role, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to save user")
	}

	srv.log(ctx).Info("User registered", "userID", user.ID, "role", user.Role)
	srv.views.Invalidate(userViews(user.ID)...)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokens.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. The account is
// re-resolved so a role change or deletion takes effect on the next refresh.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, newRefreshToken, err := srv.tokens.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetUser retrieves a single user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListUsers returns every account. Restricted to administrators.
func (srv *userService) ListUsers(ctx context.Context, actorID uuid.UUID) ([]*entity.User, error) {
	if _, err := srv.gate.admin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ChangeRole assigns a new role to a user. Restricted to administrators; an
// administrator cannot demote themselves, which keeps at least one admin
// reachable.
func (srv *userService) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	actor, err := srv.gate.admin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, entity.NewValidationError("role must be one of admin, editor, member")
	}

	if actor.ID == userID && role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("administrators cannot demote themselves")
	}

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := srv.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	srv.log(ctx).Info("Role changed", "userID", userID, "role", role, "actorID", actorID)
	srv.views.Invalidate(userViews(userID)...)

	return user, nil
}
