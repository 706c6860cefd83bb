package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listVersionsHandler handles GET /api/v1/chatbots/:id/versions.
func (s *Server) listVersionsHandler(c *echo.Context) error {
	versions, err := s.versionService.ListVersions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, versions)
}

// activateVersionHandler handles POST /api/v1/chatbots/:id/versions/:version/activate.
// Used to roll back to an archived version; the pipeline activates fresh
// builds on its own.
func (s *Server) activateVersionHandler(c *echo.Context) error {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "version must be a positive integer")
	}

	if err := s.versionService.Activate(c.Request().Context(), c.Param("id"), version); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"chatbot_id":     c.Param("id"),
		"active_version": version,
	})
}

// statsHandler handles GET /api/v1/chatbots/:id/stats?days=N.
func (s *Server) statsHandler(c *echo.Context) error {
	days := 0
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = n
	}

	stats, err := s.statsService.GetStats(c.Request().Context(), c.Param("id"), days)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
