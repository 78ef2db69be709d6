package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuildingHandler holds dependencies for building-related handlers.
type BuildingHandler struct {
	uc     usecase.BuildingUsecase
	logger *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler, injected by Fx.
func NewBuildingHandler(uc usecase.BuildingUsecase, logger *slog.Logger) *BuildingHandler {
	return &BuildingHandler{
		uc:     uc,
		logger: logger,
	}
}

// BuildingRequest represents the request body for creating or updating a building.
type BuildingRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address,omitempty"`
}

// List handles listing every building.
func (h *BuildingHandler) List(c echo.Context) error {
	buildings, err := h.uc.ListBuildings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildings, "")
}

// Get handles fetching a single building.
func (h *BuildingHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	building, err := h.uc.GetBuilding(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "")
}

// Create handles creating a building.
func (h *BuildingHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req BuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	building, err := h.uc.CreateBuilding(c.Request().Context(), actor, &usecase.CreateBuildingInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, building, "Building created")
}

// Update handles updating a building.
func (h *BuildingHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req BuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	building, err := h.uc.UpdateBuilding(c.Request().Context(), actor, id, &usecase.UpdateBuildingInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "Building updated")
}

// Delete handles deleting a building.
func (h *BuildingHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBuilding(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Building deleted")
}
