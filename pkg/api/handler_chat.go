package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/lorekeep/lorekeep/pkg/models"
)

// personaHandler handles GET /api/v1/chat/:access_url. Unauthenticated; only
// the persona's public fields leave the server.
func (s *Server) personaHandler(c *echo.Context) error {
	info, err := s.chatbotService.PersonaInfo(c.Request().Context(), c.Param("access_url"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// createSessionHandler handles POST /api/v1/chat/:access_url/sessions.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := s.sessionService.CreateSession(c.Request().Context(), c.Param("access_url"), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// sessionDetailHandler handles GET /api/v1/chat/:access_url/sessions/:session_id.
func (s *Server) sessionDetailHandler(c *echo.Context) error {
	detail, err := s.sessionService.GetSessionDetail(c.Request().Context(),
		c.Param("access_url"), c.Param("session_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// sendMessageHandler handles POST /api/v1/chat/:access_url/sessions/:session_id/messages.
// The reply streams back as server-sent events: one `data: <json>` frame per
// event, closed by `data: [DONE]`.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	events, err := s.sessionService.StreamMessage(c.Request().Context(),
		c.Param("access_url"), c.Param("session_id"), req.Message)
	if err != nil {
		return mapServiceError(c, err)
	}

	res := c.Response()
	h := res.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(res)
	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			slog.Error("Failed to marshal stream event", "error", err)
			continue
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
			// Client went away; generation keeps running server-side and the
			// completed reply is persisted for the session history.
			return nil
		}
		_ = rc.Flush()
	}

	_, _ = fmt.Fprint(res, "data: [DONE]\n\n")
	_ = rc.Flush()
	return nil
}

// stopGenerationHandler handles POST /api/v1/chat/:access_url/sessions/:session_id/stop.
func (s *Server) stopGenerationHandler(c *echo.Context) error {
	err := s.sessionService.StopGeneration(c.Request().Context(),
		c.Param("access_url"), c.Param("session_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "stop requested"})
}
