package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/lorekeep/lorekeep/pkg/models"
)

// createChatbotHandler handles POST /api/v1/chatbots.
func (s *Server) createChatbotHandler(c *echo.Context) error {
	var req models.CreateChatbotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	bot, err := s.chatbotService.CreateChatbot(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, bot)
}

// listChatbotsHandler handles GET /api/v1/chatbots.
func (s *Server) listChatbotsHandler(c *echo.Context) error {
	bots, err := s.chatbotService.ListChatbots(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, bots)
}

// getChatbotHandler handles GET /api/v1/chatbots/:id.
func (s *Server) getChatbotHandler(c *echo.Context) error {
	bot, err := s.chatbotService.GetChatbot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, bot)
}

// updateChatbotHandler handles PATCH /api/v1/chatbots/:id.
func (s *Server) updateChatbotHandler(c *echo.Context) error {
	var req models.UpdateChatbotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	bot, err := s.chatbotService.UpdateChatbot(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, bot)
}

// updateChatbotStatusHandler handles PATCH /api/v1/chatbots/:id/status.
func (s *Server) updateChatbotStatusHandler(c *echo.Context) error {
	var req models.UpdateChatbotStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	bot, err := s.chatbotService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, bot)
}

// deleteChatbotHandler handles DELETE /api/v1/chatbots/:id.
func (s *Server) deleteChatbotHandler(c *echo.Context) error {
	if err := s.chatbotService.DeleteChatbot(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
