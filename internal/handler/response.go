package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"answerbox/internal/service"
	"answerbox/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

const (
	rateLimitMessage     = "Rate limit exceeded. Please try again later."
	internalErrorMessage = "Internal server error"
)

// Error writes a JSON error payload with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps a tagged service error to an HTTP response.
// Validation messages pass through verbatim; everything else collapses to an
// opaque message with the cause logged here.
func writeServiceError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return Error(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, service.ErrRateLimited):
		return Error(c, http.StatusTooManyRequests, rateLimitMessage)
	default:
		logger.Error("request failed", "error", err)
		return Error(c, http.StatusInternalServerError, internalErrorMessage)
	}
}
