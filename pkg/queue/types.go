// Package queue provides the durable document ingestion queue. Pending
// document rows in PostgreSQL are the queue; workers claim them with
// FOR UPDATE SKIP LOCKED and heartbeat last_interaction_at so crashed
// claims can be requeued.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoDocumentsAvailable indicates no pending documents are in the queue.
	ErrNoDocumentsAvailable = errors.New("no documents available")

	// ErrAtCapacity indicates the global concurrent document limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// DocumentProcessor runs the ingestion pipeline for one claimed document.
//
// The processor owns the ENTIRE pipeline internally: stage transitions,
// per-stage retries, progress publication and the terminal status update.
// The worker only handles claiming, heartbeat and bookkeeping. A returned
// error means the document was already marked failed.
type DocumentProcessor interface {
	Process(ctx context.Context, documentID string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveDocuments  int            `json:"active_documents"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // "idle" or "working"
	CurrentDocumentID  string    `json:"current_document_id,omitempty"`
	DocumentsProcessed int       `json:"documents_processed"`
	LastActivity       time.Time `json:"last_activity"`
}
