package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingHandler holds dependencies for system setting handlers.
type SettingHandler struct {
	uc     usecase.SettingUsecase
	logger *slog.Logger
}

// NewSettingHandler is the constructor for SettingHandler, injected by Fx.
func NewSettingHandler(uc usecase.SettingUsecase, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{
		uc:     uc,
		logger: logger,
	}
}

// PutSettingRequest represents the request body for writing a setting.
type PutSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// List handles listing all system settings.
func (h *SettingHandler) List(c echo.Context) error {
	settings, err := h.uc.ListSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// Get handles fetching a single setting by key.
func (h *SettingHandler) Get(c echo.Context) error {
	key := c.Param("key")

	setting, err := h.uc.GetSetting(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "")
}

// Put handles creating or overwriting a setting.
func (h *SettingHandler) Put(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req PutSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	setting, err := h.uc.PutSetting(c.Request().Context(), actor, &usecase.PutSettingInput{
		Key:   req.Key,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Setting saved")
}

// Delete handles deleting a setting.
func (h *SettingHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSetting(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Setting deleted")
}
