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

// EquipmentHandler holds dependencies for equipment-related handlers.
type EquipmentHandler struct {
	uc     usecase.EquipmentUsecase
	logger *slog.Logger
}

// NewEquipmentHandler is the constructor for EquipmentHandler, injected by Fx.
func NewEquipmentHandler(uc usecase.EquipmentUsecase, logger *slog.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// EquipmentRequest represents the request body for creating or updating equipment.
type EquipmentRequest struct {
	Name       string    `json:"name" validate:"required"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	RoomID     uuid.UUID `json:"room_id" validate:"required"`
}

// ListByRoom handles listing the equipment placed in a room.
func (h *EquipmentHandler) ListByRoom(c echo.Context) error {
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListEquipment(c.Request().Context(), roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles fetching a single piece of equipment.
func (h *EquipmentHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetEquipment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// GetDetail handles fetching the aggregated equipment detail view.
func (h *EquipmentHandler) GetDetail(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetEquipmentDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// Create handles creating equipment.
func (h *EquipmentHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid equipment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.uc.CreateEquipment(c.Request().Context(), actor, &usecase.CreateEquipmentInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		RoomID:     req.RoomID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Equipment created")
}

// Update handles updating equipment, including moving it to another room.
func (h *EquipmentHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid equipment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.uc.UpdateEquipment(c.Request().Context(), actor, id, &usecase.UpdateEquipmentInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		RoomID:     req.RoomID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Equipment updated")
}

// Delete handles deleting equipment.
func (h *EquipmentHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEquipment(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Equipment deleted")
}

// AssetTag renders the QR asset tag for a piece of equipment as a PNG image.
func (h *EquipmentHandler) AssetTag(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	tag, err := h.uc.GenerateAssetTag(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", tag)
}
