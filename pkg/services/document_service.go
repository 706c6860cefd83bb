package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/bus"
	"github.com/lorekeep/lorekeep/pkg/models"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

// DocumentVectorStore is the vector-store surface for per-document cleanup.
type DocumentVectorStore interface {
	DeleteDocument(ctx context.Context, tenantID string, version int, documentID string) error
}

// DocumentGraphStore is the graph-store surface for per-document cleanup.
type DocumentGraphStore interface {
	RemoveDocument(ctx context.Context, tenantID string, version int, chunkIDs []string) error
}

// FileStore persists uploaded files.
type FileStore interface {
	Save(tenantID, documentID string, r io.Reader, declaredSize int64) (string, int64, error)
	RemovePath(path string) error
}

// ProgressBus reads and clears live ingestion progress.
type ProgressBus interface {
	Progress(ctx context.Context, documentID string) (bus.Progress, bool, error)
	DropProgress(ctx context.Context, documentID string) error
}

// DocumentService manages document upload, listing, deletion and progress.
type DocumentService struct {
	client   *ent.Client
	files    FileStore
	vectors  DocumentVectorStore
	graphs   DocumentGraphStore
	progress ProgressBus
	versions *VersionService
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client, files FileStore, vectors DocumentVectorStore, graphs DocumentGraphStore, progress ProgressBus, versions *VersionService) *DocumentService {
	return &DocumentService{
		client:   client,
		files:    files,
		vectors:  vectors,
		graphs:   graphs,
		progress: progress,
		versions: versions,
	}
}

// Upload stores a PDF and enqueues it for ingestion. Ingesting into an
// active tenant opens the next build version and carries the tenant's
// completed documents over into it, so the new version is a superset.
func (s *DocumentService) Upload(ctx context.Context, chatbotID, filename string, r io.Reader, declaredSize int64) (*ent.Document, error) {
	filename = sanitizeForPostgres(filename)
	if filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, NewValidationError("filename", "only PDF documents are supported")
	}
	if declaredSize < 0 {
		return nil, NewValidationError("size", "unknown upload size")
	}

	bot, err := s.client.Chatbot.Get(ctx, chatbotID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chatbot: %w", err)
	}

	version, opened, err := s.versions.OpenVersionForIngest(ctx, bot.ID)
	if err != nil {
		return nil, err
	}
	if opened && bot.ActiveVersion > 0 {
		if err := s.carryOverDocuments(ctx, bot.ID, bot.ActiveVersion, version); err != nil {
			return nil, err
		}
	}

	docID := uuid.New().String()
	path, size, err := s.files.Save(bot.ID, docID, r, declaredSize)
	if err != nil {
		return nil, err
	}

	doc, err := s.client.Document.Create().
		SetID(docID).
		SetChatbotID(bot.ID).
		SetFilename(filename).
		SetStoredPath(path).
		SetSizeBytes(size).
		SetStatus(document.StatusPending).
		SetVersion(version).
		Save(ctx)
	if err != nil {
		_ = s.files.RemovePath(path)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	slog.Info("Document enqueued",
		"document_id", doc.ID, "chatbot_id", bot.ID,
		"version", version, "size_bytes", size)
	return doc, nil
}

// carryOverDocuments clones the completed documents of the previous active
// version into the newly opened one as pending rows. They share the stored
// file and re-run the full pipeline, which re-embeds them into the new
// version's collection and graph.
func (s *DocumentService) carryOverDocuments(ctx context.Context, chatbotID string, fromVersion, toVersion int) error {
	docs, err := s.client.Document.Query().
		Where(
			document.ChatbotID(chatbotID),
			document.Version(fromVersion),
			document.StatusEQ(document.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list carry-over documents: %w", err)
	}

	for _, doc := range docs {
		_, err := s.client.Document.Create().
			SetID(uuid.New().String()).
			SetChatbotID(chatbotID).
			SetFilename(doc.Filename).
			SetStoredPath(doc.StoredPath).
			SetSizeBytes(doc.SizeBytes).
			SetStatus(document.StatusPending).
			SetVersion(toVersion).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to carry over document %s: %w", doc.ID, err)
		}
	}

	if len(docs) > 0 {
		slog.Info("Carried documents into new build version",
			"chatbot_id", chatbotID, "from", fromVersion, "to", toVersion, "count", len(docs))
	}
	return nil
}

// ListDocuments returns a tenant's documents, newest first.
func (s *DocumentService) ListDocuments(httpCtx context.Context, chatbotID string) ([]*ent.Document, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	docs, err := s.client.Document.Query().
		Where(document.ChatbotID(chatbotID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns one document scoped to its tenant.
func (s *DocumentService) GetDocument(httpCtx context.Context, chatbotID, documentID string) (*ent.Document, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	doc, err := s.client.Document.Query().
		Where(
			document.ID(documentID),
			document.ChatbotID(chatbotID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes a document row plus its chunks in the vector
// store, its graph contribution and (when unshared) its stored file.
// Documents still being processed cannot be deleted.
func (s *DocumentService) DeleteDocument(ctx context.Context, chatbotID, documentID string) error {
	doc, err := s.GetDocument(ctx, chatbotID, documentID)
	if err != nil {
		return err
	}
	switch doc.Status {
	case document.StatusPending, document.StatusCompleted, document.StatusFailed:
	default:
		return NewValidationError("status", "document is being processed; retry after it finishes")
	}

	// Selective store cleanup only makes sense for completed documents;
	// pending/failed ones never wrote chunks for their version.
	if doc.Status == document.StatusCompleted {
		if err := s.vectors.DeleteDocument(ctx, chatbotID, doc.Version, doc.ID); err != nil {
			return fmt.Errorf("failed to delete document vectors: %w", err)
		}
		chunkIDs := make([]string, doc.ChunkCount)
		for i := range chunkIDs {
			chunkIDs[i] = vectorstore.PointID(doc.ID, i)
		}
		if err := s.graphs.RemoveDocument(ctx, chatbotID, doc.Version, chunkIDs); err != nil {
			return fmt.Errorf("failed to delete document graph contribution: %w", err)
		}
	}

	if err := s.client.Document.DeleteOneID(doc.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete document row: %w", err)
	}

	// Carried-over rows share files across versions; only remove the file
	// once the last referencing row is gone.
	shared, err := s.client.Document.Query().
		Where(document.StoredPath(doc.StoredPath)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check file references: %w", err)
	}
	if !shared {
		if err := s.files.RemovePath(doc.StoredPath); err != nil {
			return err
		}
	}

	if err := s.progress.DropProgress(ctx, doc.ID); err != nil {
		slog.Warn("Failed to drop progress key", "document_id", doc.ID, "error", err)
	}

	slog.Info("Document deleted", "document_id", doc.ID, "chatbot_id", chatbotID)
	return nil
}

// GetProgress reads live progress from the bus, falling back to the
// document row when no bus entry exists (expired or never published).
func (s *DocumentService) GetProgress(ctx context.Context, chatbotID, documentID string) (*models.DocumentProgress, error) {
	doc, err := s.GetDocument(ctx, chatbotID, documentID)
	if err != nil {
		return nil, err
	}

	if p, ok, err := s.progress.Progress(ctx, documentID); err == nil && ok {
		return &models.DocumentProgress{
			DocumentID: documentID,
			Stage:      p.Stage,
			Progress:   p.Progress,
			Error:      p.Error,
		}, nil
	} else if err != nil {
		slog.Warn("Progress bus read failed, using database state",
			"document_id", documentID, "error", err)
	}

	out := &models.DocumentProgress{
		DocumentID: documentID,
		Stage:      string(doc.Status),
		Progress:   doc.Progress,
	}
	if doc.ErrorMessage != nil {
		out.Error = *doc.ErrorMessage
	}
	return out, nil
}

// sanitizeForPostgres strips NUL bytes, which PostgreSQL text columns
// reject.
func sanitizeForPostgres(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
