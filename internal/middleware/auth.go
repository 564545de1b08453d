package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pulse/internal/auth"
	"pulse/internal/errors"
	"pulse/internal/model"
)

// Caller is the authenticated identity of a request.
type Caller struct {
	ID    uuid.UUID
	Email string
	Role  model.Role
}

// CurrentCaller reads the claims that echo-jwt stored under "user".
// Refresh and verification tokens share the signing key, so only access tokens are accepted.
func CurrentCaller(c echo.Context) (*Caller, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.ErrUnauthorized
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.Type != auth.TokenTypeAccess {
		return nil, errors.ErrUnauthorized
	}
	id, err := claims.ProfileID()
	if err != nil {
		return nil, errors.ErrUnauthorized
	}
	return &Caller{ID: id, Email: claims.Email, Role: claims.Role}, nil
}

// RequireRole only lets callers with one of roles through.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := CurrentCaller(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				})
			}
			for _, r := range roles {
				if caller.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: errors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
	}
}
