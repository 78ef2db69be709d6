package middleware

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Constructor violations surface their message verbatim.
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", validationErr.Error(), "")

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Repository sentinels that escaped the use case layer are still 404s.
	if isNotFoundSentinel(err) {
		_ = response.NotFound(c, "RESOURCE_NOT_FOUND", err.Error())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

func isNotFoundSentinel(err error) bool {
	for _, sentinel := range []error{
		repository.ErrBuildingNotFound,
		repository.ErrFloorNotFound,
		repository.ErrRoomNotFound,
		repository.ErrEquipmentNotFound,
		repository.ErrEquipmentCategoryNotFound,
		repository.ErrEquipmentCommentNotFound,
		repository.ErrReservationNotFound,
		repository.ErrMaintenanceRecordNotFound,
		repository.ErrSystemSettingNotFound,
		repository.ErrUserNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
