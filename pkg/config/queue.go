package config

import (
	"fmt"
	"time"
)

// QueueConfig contains ingestion queue and worker pool configuration.
// These values control how pending documents are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes documents.
	WorkerCount int

	// MaxConcurrentDocuments is the global limit of documents being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentDocuments int

	// PollInterval is the base interval for checking pending documents.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// DocumentTimeout is the maximum time a single document can be processed.
	DocumentTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight documents
	// to complete during shutdown. Should match DocumentTimeout.
	GracefulShutdownTimeout time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned documents.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a claimed document can go without a
	// heartbeat before it is considered orphaned and requeued.
	OrphanThreshold time.Duration
}

// QueueConfigFromEnv returns the queue configuration with environment
// overrides applied on top of the built-in defaults.
func QueueConfigFromEnv() QueueConfig {
	return QueueConfig{
		WorkerCount:             envInt("WORKER_CONCURRENCY", 3),
		MaxConcurrentDocuments:  envInt("MAX_CONCURRENT_DOCUMENTS", 6),
		PollInterval:            envDuration("QUEUE_POLL_INTERVAL", 1*time.Second),
		PollIntervalJitter:      envDuration("QUEUE_POLL_JITTER", 500*time.Millisecond),
		DocumentTimeout:         envDuration("QUEUE_DOCUMENT_TIMEOUT", 90*time.Minute),
		GracefulShutdownTimeout: envDuration("QUEUE_SHUTDOWN_TIMEOUT", 90*time.Minute),
		OrphanDetectionInterval: envDuration("QUEUE_ORPHAN_INTERVAL", 5*time.Minute),
		OrphanThreshold:         envDuration("QUEUE_ORPHAN_THRESHOLD", 5*time.Minute),
	}
}

// Validate checks the queue configuration for unusable values.
func (q QueueConfig) Validate() error {
	if q.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentDocuments < q.WorkerCount {
		return fmt.Errorf("MAX_CONCURRENT_DOCUMENTS (%d) must be at least WORKER_CONCURRENCY (%d)",
			q.MaxConcurrentDocuments, q.WorkerCount)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("queue poll interval must be positive")
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan threshold must be positive")
	}
	return nil
}
