package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/bus"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/database"
	"github.com/lorekeep/lorekeep/pkg/fault"
	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

// Progress marks per stage. Finalize brings the document to 100.
const (
	progressParse   = 10
	progressChunk   = 30
	progressEmbed   = 50
	progressExtract = 70
	progressGraph   = 90
	progressDone    = 100
)

// embedBatchSize bounds one embedding request's payload.
const embedBatchSize = 16

// VectorWriter is the slice of the vector store the pipeline needs.
type VectorWriter interface {
	EnsureCollection(ctx context.Context, tenantID string, version int) error
	UpsertChunks(ctx context.Context, tenantID string, version int, chunks []vectorstore.Chunk, vectors [][]float32) error
}

// Embedder turns texts into vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ProgressPublisher pushes stage transitions onto the bus.
type ProgressPublisher interface {
	PublishProgress(ctx context.Context, p bus.Progress) error
}

// Activator is notified when a document reaches a terminal state, so the
// version manager can activate a fully built version.
type Activator interface {
	HandleDocumentFinalized(ctx context.Context, chatbotID string, version int)
}

// Orchestrator drives one document through the six-stage pipeline.
type Orchestrator struct {
	db        *database.Client
	bus       ProgressPublisher
	embedder  Embedder
	vectors   VectorWriter
	graphs    *GraphBuilder
	extractor *Extractor
	chunker   *Chunker
	activator Activator
	cfg       config.IngestConfig
}

// NewOrchestrator wires the pipeline's collaborators.
func NewOrchestrator(
	db *database.Client,
	progress ProgressPublisher,
	embedder Embedder,
	vectors VectorWriter,
	graphs *GraphBuilder,
	extractor *Extractor,
	cfg config.IngestConfig,
	activator Activator,
) *Orchestrator {
	return &Orchestrator{
		db:        db,
		bus:       progress,
		embedder:  embedder,
		vectors:   vectors,
		graphs:    graphs,
		extractor: extractor,
		chunker:   &Chunker{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap},
		activator: activator,
		cfg:       cfg,
	}
}

// Process runs the full pipeline for one claimed document. Stage effects are
// idempotent (deterministic chunk ids, MERGE-based graph writes), so a
// document requeued after a crash re-runs from the top safely. A returned
// error means the document was marked failed; the queue does not retry it.
func (o *Orchestrator) Process(ctx context.Context, documentID string) error {
	doc, err := o.db.Document.Get(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to load document %s: %w", documentID, err)
	}

	slog.Info("Starting document ingestion",
		"document_id", doc.ID, "chatbot_id", doc.ChatbotID,
		"version", doc.Version, "filename", doc.Filename)

	var parsed *ParseResult
	var chunks []Chunk
	var nodes []graphstore.Node
	var edges []graphstore.Edge

	stages := []struct {
		status   document.Status
		progress int
		run      func(context.Context) error
	}{
		{document.StatusParsing, progressParse, func(sc context.Context) error {
			var perr error
			parsed, perr = ParsePDF(doc.StoredPath)
			return perr
		}},
		{document.StatusChunking, progressChunk, func(sc context.Context) error {
			chunks = o.chunker.Split(parsed.Segments)
			if len(chunks) == 0 {
				return fault.Permanentf("document produced no chunks")
			}
			return nil
		}},
		{document.StatusEmbedding, progressEmbed, func(sc context.Context) error {
			return o.embedStage(sc, doc, chunks)
		}},
		{document.StatusExtracting, progressExtract, func(sc context.Context) error {
			var xerr error
			nodes, edges, xerr = o.extractor.Extract(sc, chunks, func(idx int) string {
				return vectorstore.PointID(doc.ID, idx)
			})
			return xerr
		}},
		{document.StatusGraphing, progressGraph, func(sc context.Context) error {
			return o.graphs.Build(sc, doc.ChatbotID, doc.Version, nodes, edges)
		}},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.setStage(ctx, doc, stage.status, stage.progress); err != nil {
			return err
		}
		if err := o.runWithRetries(ctx, doc, string(stage.status), stage.run); err != nil {
			return o.markFailed(ctx, doc, string(stage.status), err)
		}
	}

	return o.finalize(ctx, doc, parsed.PageCount, len(chunks), len(nodes))
}

// setStage transactionally records the stage transition, then publishes it.
func (o *Orchestrator) setStage(ctx context.Context, doc *ent.Document, status document.Status, progress int) error {
	err := o.db.Document.UpdateOneID(doc.ID).
		SetStatus(status).
		SetProgress(progress).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record stage %s for document %s: %w", status, doc.ID, err)
	}

	if err := o.bus.PublishProgress(ctx, bus.Progress{
		DocumentID: doc.ID,
		Stage:      string(status),
		Progress:   progress,
	}); err != nil {
		slog.Warn("Failed to publish stage progress", "document_id", doc.ID, "error", err)
	}
	return nil
}

// runWithRetries retries transient failures with exponential backoff. A stage
// deadline counts as transient; permanent and validation failures stop
// immediately.
func (o *Orchestrator) runWithRetries(ctx context.Context, doc *ent.Document, stage string, run func(context.Context) error) error {
	backoff := o.cfg.RetryBaseBackoff
	var lastErr error

	for attempt := 0; attempt <= o.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			slog.Info("Retrying stage after transient failure",
				"document_id", doc.ID, "stage", stage,
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}

		stageCtx, cancel := context.WithTimeout(ctx, o.cfg.StageTimeout)
		err := run(stageCtx)
		cancel()

		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err

		timedOut := errors.Is(err, context.DeadlineExceeded)
		if !fault.IsTransient(err) && !timedOut {
			return err
		}
	}
	return lastErr
}

func (o *Orchestrator) embedStage(ctx context.Context, doc *ent.Document, chunks []Chunk) error {
	if err := o.vectors.EnsureCollection(ctx, doc.ChatbotID, doc.Version); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)

	for start := 0; start < len(chunks); start += embedBatchSize {
		batch := chunks[start:min(start+embedBatchSize, len(chunks))]
		g.Go(func() error {
			texts := make([]string, len(batch))
			points := make([]vectorstore.Chunk, len(batch))
			for i, c := range batch {
				texts[i] = c.Text
				points[i] = vectorstore.Chunk{
					DocumentID:   doc.ID,
					ChunkIndex:   c.Index,
					Text:         c.Text,
					Page:         c.Page,
					Section:      c.Section,
					Filename:     doc.Filename,
					IsTable:      c.IsTable,
					IsCaption:    c.IsCaption,
					HeadingLevel: c.HeadingLevel,
				}
			}

			vectors, err := o.embedder.Embed(gctx, texts)
			if err != nil {
				return err
			}
			return o.vectors.UpsertChunks(gctx, doc.ChatbotID, doc.Version, points, vectors)
		})
	}

	return g.Wait()
}

// finalize records completion, publishes the terminal progress event and
// hands the version to the activator.
func (o *Orchestrator) finalize(ctx context.Context, doc *ent.Document, pageCount, chunkCount, entityCount int) error {
	err := o.db.Document.UpdateOneID(doc.ID).
		SetStatus(document.StatusCompleted).
		SetProgress(progressDone).
		SetChunkCount(chunkCount).
		SetEntityCount(entityCount).
		SetPageCount(pageCount).
		SetProcessedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize document %s: %w", doc.ID, err)
	}

	if err := o.bus.PublishProgress(ctx, bus.Progress{
		DocumentID: doc.ID,
		Stage:      string(document.StatusCompleted),
		Progress:   progressDone,
	}); err != nil {
		slog.Warn("Failed to publish completion", "document_id", doc.ID, "error", err)
	}

	slog.Info("Document ingestion completed",
		"document_id", doc.ID, "chunks", chunkCount, "entities", entityCount)

	o.activator.HandleDocumentFinalized(ctx, doc.ChatbotID, doc.Version)
	return nil
}

// markFailed records a terminal failure with a human-readable message.
func (o *Orchestrator) markFailed(ctx context.Context, doc *ent.Document, stage string, cause error) error {
	slog.Error("Document ingestion failed",
		"document_id", doc.ID, "stage", stage, "error", cause)

	msg := fmt.Sprintf("%s failed: %v", stage, cause)
	err := o.db.Document.UpdateOneID(doc.ID).
		SetStatus(document.StatusFailed).
		SetErrorMessage(msg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record failure for document %s: %w", doc.ID, err)
	}

	if err := o.bus.PublishProgress(ctx, bus.Progress{
		DocumentID: doc.ID,
		Stage:      string(document.StatusFailed),
		Progress:   doc.Progress,
		Error:      msg,
	}); err != nil {
		slog.Warn("Failed to publish failure", "document_id", doc.ID, "error", err)
	}

	o.activator.HandleDocumentFinalized(ctx, doc.ChatbotID, doc.Version)

	return fmt.Errorf("document %s failed at %s: %w", doc.ID, stage, cause)
}
