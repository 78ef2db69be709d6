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

// RoomHandler holds dependencies for room-related handlers.
type RoomHandler struct {
	uc     usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRoomRequest represents the request body for creating a room.
type CreateRoomRequest struct {
	Name     string    `json:"name" validate:"required"`
	FloorID  uuid.UUID `json:"floor_id" validate:"required"`
	Capacity *int      `json:"capacity,omitempty"`
}

// UpdateRoomRequest represents the request body for updating a room.
type UpdateRoomRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity *int   `json:"capacity,omitempty"`
}

// ListByFloor handles listing the rooms on a floor.
func (h *RoomHandler) ListByFloor(c echo.Context) error {
	floorID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	rooms, err := h.uc.ListRooms(c.Request().Context(), floorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}

// Get handles fetching a single room.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	room, err := h.uc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, room, "")
}

// Create handles creating a room.
func (h *RoomHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	room, err := h.uc.CreateRoom(c.Request().Context(), actor, &usecase.CreateRoomInput{
		Name:     req.Name,
		FloorID:  req.FloorID,
		Capacity: req.Capacity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, room, "Room created")
}

// Update handles updating a room.
func (h *RoomHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	room, err := h.uc.UpdateRoom(c.Request().Context(), actor, id, &usecase.UpdateRoomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, room, "Room updated")
}

// Delete handles deleting a room.
func (h *RoomHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRoom(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room deleted")
}
