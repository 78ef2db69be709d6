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

// MaintenanceHandler holds dependencies for maintenance record handlers.
type MaintenanceHandler struct {
	uc     usecase.MaintenanceUsecase
	logger *slog.Logger
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler, injected by Fx.
func NewMaintenanceHandler(uc usecase.MaintenanceUsecase, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		uc:     uc,
		logger: logger,
	}
}

// MaintenanceRecordRequest represents the request body for logging or amending
// service work on a piece of equipment.
type MaintenanceRecordRequest struct {
	Description string    `json:"description" validate:"required"`
	PerformedAt time.Time `json:"performed_at" validate:"required"`
	CostCents   *int      `json:"cost_cents,omitempty"`
}

// ListByEquipment handles listing the maintenance history of a piece of equipment.
func (h *MaintenanceHandler) ListByEquipment(c echo.Context) error {
	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	records, err := h.uc.ListMaintenanceRecords(c.Request().Context(), equipmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Create handles logging service work against a piece of equipment.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req MaintenanceRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.uc.CreateMaintenanceRecord(c.Request().Context(), actor, &usecase.CreateMaintenanceRecordInput{
		EquipmentID: equipmentID,
		Description: req.Description,
		PerformedAt: req.PerformedAt,
		CostCents:   req.CostCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Maintenance record created")
}

// Update handles amending a maintenance record.
func (h *MaintenanceHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req MaintenanceRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.uc.UpdateMaintenanceRecord(c.Request().Context(), actor, id, &usecase.UpdateMaintenanceRecordInput{
		Description: req.Description,
		PerformedAt: req.PerformedAt,
		CostCents:   req.CostCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Maintenance record updated")
}

// Delete handles deleting a maintenance record.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMaintenanceRecord(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Maintenance record deleted")
}
