package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/errors"
	"pulse/internal/middleware"
)

// handleError turns a service error into an echo error carrying an ErrorResponse body.
func handleError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Printf("[HTTP] %d %s: %v", httpErr.StatusCode, httpErr.Code, err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// caller returns the authenticated caller or a 401.
func caller(c echo.Context) (*middleware.Caller, error) {
	who, err := middleware.CurrentCaller(c)
	if err != nil {
		return nil, handleError(err)
	}
	return who, nil
}

// SuccessResponse is the body of endpoints that only acknowledge.
type SuccessResponse struct {
	Success bool `json:"success"`
}
