package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FloorHandler holds dependencies for floor-related handlers.
type FloorHandler struct {
	uc     usecase.FloorUsecase
	logger *slog.Logger
}

// NewFloorHandler is the constructor for FloorHandler, injected by Fx.
func NewFloorHandler(uc usecase.FloorUsecase, logger *slog.Logger) *FloorHandler {
	return &FloorHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateFloorRequest represents the request body for creating a floor.
type CreateFloorRequest struct {
	Name        string    `json:"name" validate:"required"`
	BuildingID  uuid.UUID `json:"building_id" validate:"required"`
	FloorNumber *int      `json:"floor_number,omitempty"`
}

// UpdateFloorRequest represents the request body for updating a floor.
type UpdateFloorRequest struct {
	Name        string `json:"name" validate:"required"`
	FloorNumber *int   `json:"floor_number,omitempty"`
}

// ListByBuilding handles listing the floors of a building.
func (h *FloorHandler) ListByBuilding(c echo.Context) error {
	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	floors, err := h.uc.ListFloors(c.Request().Context(), buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, floors, "")
}

// Get handles fetching a single floor.
func (h *FloorHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	floor, err := h.uc.GetFloor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, floor, "")
}

// Create handles creating a floor.
func (h *FloorHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CreateFloorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	floor, err := h.uc.CreateFloor(c.Request().Context(), actor, &usecase.CreateFloorInput{
		Name:        req.Name,
		BuildingID:  req.BuildingID,
		FloorNumber: req.FloorNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, floor, "Floor created")
}

// Update handles updating a floor.
func (h *FloorHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFloorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	floor, err := h.uc.UpdateFloor(c.Request().Context(), actor, id, &usecase.UpdateFloorInput{
		Name:        req.Name,
		FloorNumber: req.FloorNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, floor, "Floor updated")
}

// Delete handles deleting a floor.
func (h *FloorHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFloor(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Floor deleted")
}
