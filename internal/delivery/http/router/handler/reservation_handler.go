package handler

import (
	"log/slog"
	"net/http"
	"time"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReservationRequest represents the request body for reserving equipment.
type CreateReservationRequest struct {
	Purpose  string    `json:"purpose" validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

// ListByEquipment handles listing the reservations for a piece of equipment.
func (h *ReservationHandler) ListByEquipment(c echo.Context) error {
	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	reservations, err := h.uc.ListReservations(c.Request().Context(), equipmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// Create handles reserving a piece of equipment for the authenticated user.
func (h *ReservationHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.uc.CreateReservation(c.Request().Context(), actor, &usecase.CreateReservationInput{
		EquipmentID: equipmentID,
		Purpose:     req.Purpose,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created")
}

// Cancel handles cancelling a reservation.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.CancelReservation(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation cancelled")
}
