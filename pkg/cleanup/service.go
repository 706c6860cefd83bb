// Package cleanup runs the background janitor:
//   - purges chat sessions past their TTL plus a grace window
//   - retries tenant teardown for chatbots stuck in cleanup_pending
//   - drops progress-bus keys whose documents no longer exist
//
// All operations are idempotent and safe to run from multiple pods.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/services"
)

// ProgressJanitor is the bus surface used to drop stale progress keys.
type ProgressJanitor interface {
	StaleProgressKeys(ctx context.Context) ([]string, error)
	DropProgress(ctx context.Context, documentID string) error
}

// Service is the periodic janitor.
type Service struct {
	config         config.CleanupConfig
	client         *ent.Client
	sessionService *services.SessionService
	versionService *services.VersionService
	bus            ProgressJanitor

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg config.CleanupConfig,
	client *ent.Client,
	sessions *services.SessionService,
	versions *services.VersionService,
	bus ProgressJanitor,
) *Service {
	return &Service{
		config:         cfg,
		client:         client,
		sessionService: sessions,
		versionService: versions,
		bus:            bus,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.config.Interval,
		"session_grace", s.config.SessionGrace)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one janitor pass.
func (s *Service) RunAll(ctx context.Context) {
	s.purgeExpiredSessions(ctx)
	s.retryPendingCleanups(ctx)
	s.dropStaleProgress(ctx)
}

func (s *Service) purgeExpiredSessions(ctx context.Context) {
	count, err := s.sessionService.PurgeExpired(ctx, s.config.SessionGrace)
	if err != nil {
		slog.Error("Janitor: session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Janitor: purged expired sessions", "count", count)
	}
}

// retryPendingCleanups retries tenant teardown for chatbots whose earlier
// delete failed partway through.
func (s *Service) retryPendingCleanups(ctx context.Context) {
	bots, err := s.client.Chatbot.Query().
		Where(chatbot.StatusEQ(chatbot.StatusCleanupPending)).
		All(ctx)
	if err != nil {
		slog.Error("Janitor: failed to list pending cleanups", "error", err)
		return
	}

	for _, bot := range bots {
		if err := s.versionService.CleanupTenant(ctx, bot); err != nil {
			// CleanupTenant already logged and kept the row pending.
			continue
		}
		slog.Info("Janitor: completed deferred tenant cleanup", "chatbot_id", bot.ID)
	}
}

// dropStaleProgress removes bus progress keys that outlived their document
// row, e.g. after a tenant delete.
func (s *Service) dropStaleProgress(ctx context.Context) {
	keys, err := s.bus.StaleProgressKeys(ctx)
	if err != nil {
		slog.Error("Janitor: failed to list progress keys", "error", err)
		return
	}

	dropped := 0
	for _, documentID := range keys {
		exists, err := s.client.Document.Query().
			Where(document.ID(documentID)).
			Exist(ctx)
		if err != nil {
			slog.Error("Janitor: document existence check failed",
				"document_id", documentID, "error", err)
			continue
		}
		if exists {
			continue
		}
		if err := s.bus.DropProgress(ctx, documentID); err != nil {
			slog.Warn("Janitor: failed to drop progress key",
				"document_id", documentID, "error", err)
			continue
		}
		dropped++
	}
	if dropped > 0 {
		slog.Info("Janitor: dropped stale progress keys", "count", dropped)
	}
}
