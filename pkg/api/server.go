// Package api exposes the HTTP surface: an authenticated admin API for
// tenant, document and version management, and the public chat API behind
// per-tenant access slugs.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/database"
	"github.com/lorekeep/lorekeep/pkg/queue"
	"github.com/lorekeep/lorekeep/pkg/services"
)

// Server wires services to HTTP routes.
type Server struct {
	dbClient   *database.Client
	workerPool *queue.WorkerPool

	chatbotService  *services.ChatbotService
	documentService *services.DocumentService
	versionService  *services.VersionService
	sessionService  *services.SessionService
	statsService    *services.StatsService

	httpCfg  config.HTTPConfig
	adminCfg config.AdminConfig
	maxBody  int64

	srv *http.Server
}

// NewServer creates the API server.
func NewServer(
	dbClient *database.Client,
	workerPool *queue.WorkerPool,
	chatbots *services.ChatbotService,
	documents *services.DocumentService,
	versions *services.VersionService,
	sessions *services.SessionService,
	stats *services.StatsService,
	cfg *config.Config,
) *Server {
	return &Server{
		dbClient:        dbClient,
		workerPool:      workerPool,
		chatbotService:  chatbots,
		documentService: documents,
		versionService:  versions,
		sessionService:  sessions,
		statsService:    stats,
		httpCfg:         cfg.HTTP,
		adminCfg:        cfg.Admin,
		maxBody:         cfg.Storage.MaxDocumentBytes,
	}
}

// Router builds the echo instance with all middleware and routes.
func (s *Server) Router() *echo.Echo {
	e := echo.New()

	e.Use(requestLogger())
	e.Use(recoverPanics())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	admin := e.Group("/api/v1", bearerAuth(s.adminCfg.APIToken))
	admin.POST("/chatbots", s.createChatbotHandler)
	admin.GET("/chatbots", s.listChatbotsHandler)
	admin.GET("/chatbots/:id", s.getChatbotHandler)
	admin.PATCH("/chatbots/:id", s.updateChatbotHandler)
	admin.PATCH("/chatbots/:id/status", s.updateChatbotStatusHandler)
	admin.DELETE("/chatbots/:id", s.deleteChatbotHandler)

	admin.POST("/chatbots/:id/documents", s.uploadDocumentHandler)
	admin.GET("/chatbots/:id/documents", s.listDocumentsHandler)
	admin.GET("/chatbots/:id/documents/:doc_id", s.getDocumentHandler)
	admin.DELETE("/chatbots/:id/documents/:doc_id", s.deleteDocumentHandler)
	admin.GET("/chatbots/:id/documents/:doc_id/progress", s.documentProgressHandler)

	admin.GET("/chatbots/:id/versions", s.listVersionsHandler)
	admin.POST("/chatbots/:id/versions/:version/activate", s.activateVersionHandler)

	admin.GET("/chatbots/:id/stats", s.statsHandler)

	public := e.Group("/api/v1/chat",
		rateLimit(s.adminCfg.RateLimitPerMinute),
		bodyLimit(1<<20), // chat payloads are small; uploads go through the admin group
	)
	public.GET("/:access_url", s.personaHandler)
	public.POST("/:access_url/sessions", s.createSessionHandler)
	public.GET("/:access_url/sessions/:session_id", s.sessionDetailHandler)
	public.POST("/:access_url/sessions/:session_id/messages", s.sendMessageHandler)
	public.POST("/:access_url/sessions/:session_id/stop", s.stopGenerationHandler)

	return e
}

// Start begins serving. Blocks until the listener stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.httpCfg.Host, s.httpCfg.Port)
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// No WriteTimeout: SSE responses stay open for the whole generation.
	}

	slog.Info("HTTP server listening", "addr", addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
