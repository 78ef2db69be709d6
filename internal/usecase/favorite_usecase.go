package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for the per-user favorites set.
type FavoriteUsecase interface {
	// ListFavorites returns the equipment ids the user has bookmarked.
	ListFavorites(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error)

	// ToggleFavorite flips membership for the given equipment and reports
	// whether the equipment is a favorite after the call.
	ToggleFavorite(ctx context.Context, actorID, equipmentID uuid.UUID) (bool, error)
}
