package impl

import (
	"context"
	"log/slog"

	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	gate      actorGate
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		gate:      actorGate{users: userRepo},
		users:     userRepo,
		equipment: equipmentRepo,
		logger:    logger,
	}
}

// ListFavorites returns the equipment ids the user has bookmarked.
func (srv *favoriteService) ListFavorites(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error) {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return actor.Favorites, nil
}

// ToggleFavorite flips membership for the given equipment. The storage
// operations are idempotent, so two racing toggles of the same pair settle
// on one of the two valid outcomes rather than failing.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, actorID, equipmentID uuid.UUID) (bool, error) {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return false, err
	}

	if _, err := srv.equipment.FindByID(ctx, equipmentID); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return false, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return false, errors.Wrap(err, "failed to find equipment")
	}

	if actor.HasFavorite(equipmentID) {
		if err := srv.users.RemoveFavorite(ctx, actor.ID, equipmentID); err != nil {
			return false, errors.Wrap(err, "failed to remove favorite")
		}

		srv.logger.Debug("Favorite removed", "userID", actor.ID, "equipmentID", equipmentID)

		return false, nil
	}

	if err := srv.users.AddFavorite(ctx, actor.ID, equipmentID); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return false, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return false, errors.Wrap(err, "failed to add favorite")
	}

	srv.logger.Debug("Favorite added", "userID", actor.ID, "equipmentID", equipmentID)

	return true, nil
}
