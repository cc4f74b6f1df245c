// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// callerRole reads the role the auth middleware stored on the context.
// Routes without the middleware count as Public.
func callerRole(c echo.Context) entity.Role {
	role, ok := c.Get(middleware.ContextKeyRole).(entity.Role)
	if !ok {
		return entity.RolePublic
	}

	return role
}

// callerUsername reads the authenticated username from the context.
func callerUsername(c echo.Context) (string, error) {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return "", response.Unauthorized(c, "TOKEN_INVALID", "Username missing from token")
	}

	return username, nil
}

// handleAppError turns domain errors into their HTTP responses and passes
// everything else to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
