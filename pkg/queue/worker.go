package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes documents.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	processor DocumentProcessor
	pool      DocumentRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentDocumentID  string
	documentsProcessed int
	lastActivity       time.Time
}

// DocumentRegistry is the subset of WorkerPool used by Worker for document registration.
type DocumentRegistry interface {
	RegisterDocument(documentID string, cancel context.CancelFunc)
	UnregisterDocument(documentID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, processor DocumentProcessor, pool DocumentRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		processor:    processor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                 w.id,
		Status:             string(w.status),
		CurrentDocumentID:  w.currentDocumentID,
		DocumentsProcessed: w.documentsProcessed,
		LastActivity:       w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoDocumentsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing document", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a document, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Document.Query().
		Where(document.StatusIn(inFlightStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking in-flight documents: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentDocuments {
		return ErrAtCapacity
	}

	// 2. Claim next document
	doc, err := w.claimNextDocument(ctx)
	if err != nil {
		return err
	}

	log := slog.With("document_id", doc.ID, "worker_id", w.id)
	log.Info("Document claimed", "filename", doc.Filename, "attempt", doc.Attempts)

	w.setStatus(WorkerStatusWorking, doc.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create document context with timeout
	docCtx, cancelDoc := context.WithTimeout(ctx, w.config.DocumentTimeout)
	defer cancelDoc()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterDocument(doc.ID, cancelDoc)
	defer w.pool.UnregisterDocument(doc.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(docCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, doc.ID)

	// 6. Run the pipeline. The processor records stage transitions and the
	// terminal status itself; errors here are already reflected in the row.
	if perr := w.processor.Process(docCtx, doc.ID); perr != nil {
		cancelHeartbeat()
		// A pod shutdown or document timeout can leave the row in a
		// non-terminal stage; requeue it so another claim can resume.
		if errors.Is(perr, context.Canceled) || errors.Is(perr, context.DeadlineExceeded) {
			w.requeueInterrupted(doc.ID, perr)
		}
		log.Warn("Document processing ended with error", "error", perr)
	} else {
		cancelHeartbeat()
		log.Info("Document processing complete")
	}

	w.mu.Lock()
	w.documentsProcessed++
	w.mu.Unlock()

	return nil
}

// claimNextDocument atomically claims the oldest pending document using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextDocument(ctx context.Context) (*ent.Document, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	doc, err := tx.Document.Query().
		Where(document.StatusEQ(document.StatusPending)).
		Order(ent.Asc(document.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoDocumentsAvailable
		}
		return nil, fmt.Errorf("failed to query pending document: %w", err)
	}

	// Claim: mark the first stage, record the owning pod and start the
	// heartbeat clock. This removes the row from the pending pool.
	now := time.Now()
	doc, err = doc.Update().
		SetStatus(document.StatusParsing).
		SetPodID(w.podID).
		SetLastInteractionAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return doc, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, documentID string) {
	interval := w.config.OrphanThreshold / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Document.UpdateOneID(documentID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "document_id", documentID, "error", err)
			}
		}
	}
}

// requeueInterrupted puts a document interrupted by shutdown or timeout back
// into the pending pool if its row is still in a non-terminal stage. Uses a
// background context because the document context is already dead.
func (w *Worker) requeueInterrupted(documentID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := w.client.Document.Update().
		Where(
			document.ID(documentID),
			document.StatusIn(inFlightStatuses...),
		).
		SetStatus(document.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx)
	if err != nil {
		slog.Error("Failed to requeue interrupted document",
			"document_id", documentID, "error", err)
		return
	}
	if n > 0 {
		slog.Info("Interrupted document requeued",
			"document_id", documentID, "cause", cause)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, documentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentDocumentID = documentID
	w.lastActivity = time.Now()
}
