// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"atrium/internal/delivery/http/middleware"
	"atrium/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// actorID extracts the authenticated user id set by the auth middleware.
// The returned error is non-nil so callers stop; the central error handler
// renders it.
func actorID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return userID, nil
}

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" path parameter")
	}

	return id, nil
}
