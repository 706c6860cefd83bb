package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/fault"
	"github.com/lorekeep/lorekeep/pkg/services"
	"github.com/lorekeep/lorekeep/pkg/storage"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "oversized upload maps to 413",
			err:        fmt.Errorf("wrapped: %w", storage.ErrTooLarge),
			expectCode: http.StatusRequestEntityTooLarge,
			expectMsg:  "maximum allowed size",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "building version maps to 409",
			err:        services.ErrVersionNotReady,
			expectCode: http.StatusConflict,
			expectMsg:  "still building",
		},
		{
			name:       "expired session maps to 410",
			err:        chat.ErrSessionExpired,
			expectCode: http.StatusGone,
			expectMsg:  "expired",
		},
		{
			name:       "oversized message maps to 422",
			err:        chat.ErrMessageTooLong,
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "length limit",
		},
		{
			name:       "transient fault maps to 503",
			err:        fault.Transientf("vector store timeout"),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "temporarily unavailable",
		},
		{
			name:       "permanent fault maps to 422",
			err:        fault.Permanentf("document is encrypted"),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "encrypted",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			he := mapServiceError(c, tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)

			if tt.expectCode == http.StatusServiceUnavailable {
				assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			}
		})
	}
}
