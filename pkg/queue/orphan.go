package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/document"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned documents.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds in-flight documents with stale heartbeats
// and puts them back into the pending pool. Stage effects are idempotent,
// so a requeued document re-runs safely on whichever pod claims it next.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Document.Query().
		Where(
			document.StatusIn(inFlightStatuses...),
			document.LastInteractionAtNotNil(),
			document.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned documents: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned documents", "count", len(orphans))

	requeued := 0
	for _, doc := range orphans {
		if err := p.requeueOrphanedDocument(ctx, doc); err != nil {
			slog.Error("Failed to requeue orphaned document",
				"document_id", doc.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedDocument resets a single orphaned document to pending.
// The status guard keeps the update a no-op if the owning pod finished the
// document between the scan and this write.
func (p *WorkerPool) requeueOrphanedDocument(ctx context.Context, doc *ent.Document) error {
	podID := "unknown"
	if doc.PodID != nil {
		podID = *doc.PodID
	}
	lastHeartbeat := "unknown"
	if doc.LastInteractionAt != nil {
		lastHeartbeat = doc.LastInteractionAt.Format(time.RFC3339)
	}

	n, err := p.client.Document.Update().
		Where(
			document.ID(doc.ID),
			document.StatusIn(inFlightStatuses...),
		).
		SetStatus(document.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset document to pending: %w", err)
	}
	if n > 0 {
		slog.Warn("Orphaned document requeued",
			"document_id", doc.ID,
			"old_pod_id", podID,
			"last_heartbeat", lastHeartbeat)
	}
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of documents owned by
// this pod that were in flight when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.Document.Update().
		Where(
			document.StatusIn(inFlightStatuses...),
			document.PodIDEQ(podID),
		).
		SetStatus(document.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued in-flight documents from previous run",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
