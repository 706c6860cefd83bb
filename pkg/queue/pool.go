package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/config"
)

// inFlightStatuses are the non-terminal statuses a claimed document moves
// through while a worker owns it.
var inFlightStatuses = []document.Status{
	document.StatusParsing,
	document.StatusChunking,
	document.StatusEmbedding,
	document.StatusExtracting,
	document.StatusGraphing,
}

// WorkerPool manages a pool of ingestion workers.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	processor DocumentProcessor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Document cancel registry: document_id → cancel function
	activeDocs map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, processor DocumentProcessor) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		client:     client,
		config:     cfg,
		processor:  processor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeDocs: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.processor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current documents before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveDocumentIDs()
	if len(active) > 0 {
		slog.Info("Waiting for in-flight documents to complete",
			"count", len(active),
			"document_ids", active)
	}

	// Signal all workers to stop (they finish current documents)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterDocument stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterDocument(documentID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeDocs[documentID] = cancel
}

// UnregisterDocument removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterDocument(documentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeDocs, documentID)
}

// CancelDocument triggers context cancellation for a document on this pod.
// Returns true if the document was found and cancelled on this pod.
func (p *WorkerPool) CancelDocument(documentID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeDocs[documentID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Document.Query().
		Where(document.StatusEQ(document.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeDocs, errA := p.client.Document.Query().
		Where(
			document.StatusIn(inFlightStatuses...),
			document.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query in-flight documents for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeDocs <= p.config.MaxConcurrentDocuments && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("in-flight documents query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveDocuments: activeDocs,
		MaxConcurrent:   p.config.MaxConcurrentDocuments,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastOrphanScan:  lastOrphanScan,
		OrphansRequeued: orphansRequeued,
	}
}

// getActiveDocumentIDs returns IDs of documents being processed (for logging).
func (p *WorkerPool) getActiveDocumentIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	docs := make([]string, 0, len(p.activeDocs))
	for id := range p.activeDocs {
		docs = append(docs, id)
	}
	return docs
}
