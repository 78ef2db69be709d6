package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing the authenticated user's favorite equipment IDs.
func (h *FavoriteHandler) List(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// Toggle flips whether a piece of equipment is in the authenticated user's
// favorites and reports the resulting membership.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	favorited, err := h.uc.ToggleFavorite(c.Request().Context(), actor, equipmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}
