package middleware

import (
	"strings"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/domain/permission"
	"ledger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// AuthMiddleware provides middleware for JWT authentication and for gating
// routes through the permission table.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the caller's
// username and role on the context. Requests without a valid token are
// rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			return err
		}
		if claims == nil {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, entity.RoleFromString(claims.Role))

		return next(c)
	}
}

// Identify resolves the caller's role without requiring a token. Anonymous
// requests proceed as Public; a present but invalid token is still rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			return err
		}

		if claims == nil {
			c.Set(ContextKeyRole, entity.RolePublic)
		} else {
			c.Set(ContextKeyUsername, claims.Username)
			c.Set(ContextKeyRole, entity.RoleFromString(claims.Role))
		}

		return next(c)
	}
}

// Require gates a route on one permission table entry. It must run after
// Authenticate or Identify.
func (m *AuthMiddleware) Require(op permission.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				role = entity.RolePublic
			}

			if !permission.Allowed(role, op) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Your role does not allow this operation")
			}

			return next(c)
		}
	}
}

// claimsFromHeader parses the Authorization header. A missing header yields
// nil claims with no error; a malformed or invalid token yields a 401.
func (m *AuthMiddleware) claimsFromHeader(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
	}

	return claims, nil
}
