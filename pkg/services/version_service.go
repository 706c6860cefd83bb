package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/document"
)

// VectorCleaner is the vector-store surface the version manager needs.
type VectorCleaner interface {
	DropCollection(ctx context.Context, tenantID string, version int) error
}

// GraphCleaner is the graph-store surface the version manager needs.
type GraphCleaner interface {
	DeleteVersion(ctx context.Context, tenantID string, version int) error
	DeleteTenant(ctx context.Context, tenantID string) error
}

// FileCleaner removes stored document files.
type FileCleaner interface {
	RemoveTenant(tenantID string) error
}

// VersionService owns the per-tenant index lifecycle: opening build
// versions for ingestion, atomic activation when the last document of a
// version finishes, and cleanup of retired artifacts.
type VersionService struct {
	client  *ent.Client
	vectors VectorCleaner
	graphs  GraphCleaner
	files   FileCleaner
}

// NewVersionService creates a new VersionService.
func NewVersionService(client *ent.Client, vectors VectorCleaner, graphs GraphCleaner, files FileCleaner) *VersionService {
	return &VersionService{client: client, vectors: vectors, graphs: graphs, files: files}
}

// ListVersions returns all build versions of a chatbot, newest first.
func (s *VersionService) ListVersions(httpCtx context.Context, chatbotID string) ([]*ent.BuildVersion, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	versions, err := s.client.BuildVersion.Query().
		Where(buildversion.ChatbotID(chatbotID)).
		Order(ent.Desc(buildversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// OpenVersionForIngest returns the version number new documents should be
// ingested into, creating a build version row when needed:
//   - no versions yet → version 1, building
//   - a building version exists → reuse it
//   - tenant has an active version N and nothing building → open N+1
//
// The second return reports whether a new build version was opened by this
// call, so the caller can carry still-present documents over into it.
func (s *VersionService) OpenVersionForIngest(ctx context.Context, chatbotID string) (int, bool, error) {
	// Reuse an open build if one exists.
	open, err := s.client.BuildVersion.Query().
		Where(
			buildversion.ChatbotID(chatbotID),
			buildversion.StatusEQ(buildversion.StatusBuilding),
		).
		Order(ent.Desc(buildversion.FieldVersion)).
		First(ctx)
	if err == nil {
		return open.Version, false, nil
	}
	if !ent.IsNotFound(err) {
		return 0, false, fmt.Errorf("failed to query building version: %w", err)
	}

	latest, err := s.client.BuildVersion.Query().
		Where(buildversion.ChatbotID(chatbotID)).
		Order(ent.Desc(buildversion.FieldVersion)).
		First(ctx)
	next := 1
	switch {
	case err == nil:
		next = latest.Version + 1
	case !ent.IsNotFound(err):
		return 0, false, fmt.Errorf("failed to query latest version: %w", err)
	}

	_, err = s.client.BuildVersion.Create().
		SetID(uuid.New().String()).
		SetChatbotID(chatbotID).
		SetVersion(next).
		SetStatus(buildversion.StatusBuilding).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent upload opening the same version.
		if ent.IsConstraintError(err) {
			return next, false, nil
		}
		return 0, false, fmt.Errorf("failed to open version %d: %w", next, err)
	}

	slog.Info("Opened build version", "chatbot_id", chatbotID, "version", next)
	return next, true, nil
}

// HandleDocumentFinalized is called by the ingestion pipeline whenever a
// document reaches a terminal status. When no documents of the version are
// still in flight and at least one completed, the version is marked ready
// and activated.
func (s *VersionService) HandleDocumentFinalized(ctx context.Context, chatbotID string, version int) {
	remaining, err := s.client.Document.Query().
		Where(
			document.ChatbotID(chatbotID),
			document.Version(version),
			document.StatusNotIn(document.StatusCompleted, document.StatusFailed),
		).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to count in-flight documents for version",
			"chatbot_id", chatbotID, "version", version, "error", err)
		return
	}
	if remaining > 0 {
		return
	}

	completed, err := s.client.Document.Query().
		Where(
			document.ChatbotID(chatbotID),
			document.Version(version),
			document.StatusEQ(document.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to count completed documents for version",
			"chatbot_id", chatbotID, "version", version, "error", err)
		return
	}
	if completed == 0 {
		// Every document failed; leave the version building so the
		// admin can re-upload into it.
		slog.Warn("Version has no completed documents, skipping activation",
			"chatbot_id", chatbotID, "version", version)
		return
	}

	if err := s.markReady(ctx, chatbotID, version); err != nil {
		slog.Error("Failed to mark version ready",
			"chatbot_id", chatbotID, "version", version, "error", err)
		return
	}
	if err := s.Activate(ctx, chatbotID, version); err != nil {
		slog.Error("Failed to activate version",
			"chatbot_id", chatbotID, "version", version, "error", err)
	}
}

// markReady transitions a building version to ready.
func (s *VersionService) markReady(ctx context.Context, chatbotID string, version int) error {
	n, err := s.client.BuildVersion.Update().
		Where(
			buildversion.ChatbotID(chatbotID),
			buildversion.Version(version),
			buildversion.StatusEQ(buildversion.StatusBuilding),
		).
		SetStatus(buildversion.StatusReady).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark version ready: %w", err)
	}
	if n == 0 {
		// Already ready or active; activation is idempotent from here.
		slog.Debug("Version not in building state", "chatbot_id", chatbotID, "version", version)
	}
	return nil
}

// Activate switches the tenant to the given version in one transaction.
// The chatbot row is locked FOR UPDATE so concurrent activations serialize;
// the previous active version is archived. Ready and archived versions can
// be activated; building versions cannot.
func (s *VersionService) Activate(httpCtx context.Context, chatbotID string, version int) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the tenant row: all lifecycle transitions serialize on it.
	bot, err := tx.Chatbot.Query().
		Where(chatbot.ID(chatbotID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}

	target, err := tx.BuildVersion.Query().
		Where(
			buildversion.ChatbotID(chatbotID),
			buildversion.Version(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load version: %w", err)
	}
	if target.Status == buildversion.StatusBuilding {
		return ErrVersionNotReady
	}
	if target.Status == buildversion.StatusActive {
		return tx.Commit() // already active, nothing to do
	}

	now := time.Now()

	// Archive the predecessor.
	if bot.ActiveVersion > 0 && bot.ActiveVersion != version {
		_, err = tx.BuildVersion.Update().
			Where(
				buildversion.ChatbotID(chatbotID),
				buildversion.Version(bot.ActiveVersion),
				buildversion.StatusEQ(buildversion.StatusActive),
			).
			SetStatus(buildversion.StatusArchived).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to archive version %d: %w", bot.ActiveVersion, err)
		}
	}

	err = tx.BuildVersion.UpdateOneID(target.ID).
		SetStatus(buildversion.StatusActive).
		SetActivatedAt(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to activate version: %w", err)
	}

	err = tx.Chatbot.UpdateOneID(chatbotID).
		SetActiveVersion(version).
		SetStatus(chatbot.StatusActive).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update chatbot active version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}

	slog.Info("Version activated", "chatbot_id", chatbotID, "version", version)
	return nil
}

// CleanupTenant removes every artifact of a chatbot across the vector
// store, the graph store and file storage. Any substep failure flips the
// chatbot to cleanup_pending so the janitor retries later; the row (and
// its id) survives until cleanup fully succeeds.
func (s *VersionService) CleanupTenant(ctx context.Context, bot *ent.Chatbot) error {
	versions, err := s.client.BuildVersion.Query().
		Where(buildversion.ChatbotID(bot.ID)).
		All(ctx)
	if err != nil {
		return s.deferCleanup(ctx, bot.ID, fmt.Errorf("failed to list versions: %w", err))
	}

	for _, v := range versions {
		if err := s.vectors.DropCollection(ctx, bot.ID, v.Version); err != nil {
			return s.deferCleanup(ctx, bot.ID, fmt.Errorf("failed to drop collection v%d: %w", v.Version, err))
		}
	}
	if err := s.graphs.DeleteTenant(ctx, bot.ID); err != nil {
		return s.deferCleanup(ctx, bot.ID, fmt.Errorf("failed to delete graph: %w", err))
	}
	if err := s.files.RemoveTenant(bot.ID); err != nil {
		return s.deferCleanup(ctx, bot.ID, fmt.Errorf("failed to remove files: %w", err))
	}

	// Relational rows go last; cascades remove documents, versions,
	// sessions, messages and stats.
	if err := s.client.Chatbot.DeleteOneID(bot.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return s.deferCleanup(ctx, bot.ID, fmt.Errorf("failed to delete chatbot row: %w", err))
	}

	slog.Info("Tenant cleanup complete", "chatbot_id", bot.ID)
	return nil
}

// DropVersionArtifacts removes the vector collection and graph subset of a
// single retired version.
func (s *VersionService) DropVersionArtifacts(ctx context.Context, chatbotID string, version int) error {
	if err := s.vectors.DropCollection(ctx, chatbotID, version); err != nil {
		return fmt.Errorf("failed to drop collection v%d: %w", version, err)
	}
	if err := s.graphs.DeleteVersion(ctx, chatbotID, version); err != nil {
		return fmt.Errorf("failed to delete graph v%d: %w", version, err)
	}
	return nil
}

// deferCleanup records a failed cleanup so the janitor retries it.
func (s *VersionService) deferCleanup(ctx context.Context, chatbotID string, cause error) error {
	slog.Error("Tenant cleanup failed, deferring to janitor",
		"chatbot_id", chatbotID, "error", cause)

	if err := s.client.Chatbot.UpdateOneID(chatbotID).
		SetStatus(chatbot.StatusCleanupPending).
		Exec(ctx); err != nil && !ent.IsNotFound(err) {
		slog.Error("Failed to mark chatbot cleanup_pending",
			"chatbot_id", chatbotID, "error", err)
	}
	return cause
}
