package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/fault"
	"github.com/lorekeep/lorekeep/pkg/services"
	"github.com/lorekeep/lorekeep/pkg/storage"
)

const transientRetryAfterSeconds = 5

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *echo.Context, err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "document exceeds the maximum allowed size")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, chat.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrVersionNotReady):
		return echo.NewHTTPError(http.StatusConflict, "version is still building")
	case errors.Is(err, services.ErrConcurrentModification):
		return echo.NewHTTPError(http.StatusConflict, "resource is being modified, retry shortly")
	case errors.Is(err, chat.ErrSessionExpired):
		return echo.NewHTTPError(http.StatusGone, "session has expired")
	case errors.Is(err, chat.ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	case errors.Is(err, chat.ErrMessageTooLong):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "message exceeds the length limit")
	}
	if fault.IsTransient(err) {
		c.Response().Header().Set("Retry-After", strconv.Itoa(transientRetryAfterSeconds))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "a backing service is temporarily unavailable")
	}
	if fault.IsPermanent(err) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Unexpected error: log it with a correlation id the client can quote.
	correlationID := uuid.New().String()
	slog.Error("Unexpected service error", "error", err, "correlation_id", correlationID)
	return echo.NewHTTPError(http.StatusInternalServerError,
		"internal server error (id "+correlationID+")")
}
