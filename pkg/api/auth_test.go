package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestBearerAuth(t *testing.T) {
	newServer := func(token string) *echo.Echo {
		e := echo.New()
		g := e.Group("/admin", bearerAuth(token))
		g.GET("/ping", func(c *echo.Context) error {
			return c.String(http.StatusOK, "pong")
		})
		return e
	}

	do := func(e *echo.Echo, authorization string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	e := newServer("secret-token")
	assert.Equal(t, http.StatusOK, do(e, "Bearer secret-token"))
	assert.Equal(t, http.StatusUnauthorized, do(e, ""))
	assert.Equal(t, http.StatusUnauthorized, do(e, "Bearer wrong"))
	assert.Equal(t, http.StatusUnauthorized, do(e, "Basic secret-token"))

	// Unset token closes the admin surface instead of opening it.
	unconfigured := newServer("")
	assert.Equal(t, http.StatusUnauthorized, do(unconfigured, "Bearer anything"))
}
