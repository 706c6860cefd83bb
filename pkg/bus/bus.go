// Package bus implements the progress and cancellation bus on Redis.
//
// Per-document ingestion progress lives in a hash (pollable latest state,
// last writer wins) and is also published on a channel of the same name for
// subscribers. Cancellation requests are short-lived keys polled by the
// answer streamer between emissions.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lorekeep/lorekeep/pkg/config"
)

const (
	progressTTL = 24 * time.Hour
	cancelTTL   = 60 * time.Second
)

// Progress is the latest ingestion state of one document.
type Progress struct {
	DocumentID string `json:"document_id"`
	Stage      string `json:"stage"`
	Progress   int    `json:"progress"`
	Error      string `json:"error,omitempty"`
}

// Bus is the Redis-backed progress/cancellation bus.
type Bus struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg config.RedisConfig) (*Bus, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Bus{rdb: rdb}, nil
}

// Close releases the Redis connection pool.
func (b *Bus) Close() error {
	return b.rdb.Close()
}

func progressKey(documentID string) string {
	return "doc:progress:" + documentID
}

func cancelKey(sessionID string) string {
	return "chat:cancel:" + sessionID
}

// PublishProgress stores the latest progress state and notifies subscribers.
// The stored hash expires after 24h so abandoned documents do not accumulate.
func (b *Bus) PublishProgress(ctx context.Context, p Progress) error {
	key := progressKey(p.DocumentID)

	pipe := b.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"stage":    p.Stage,
		"progress": p.Progress,
		"error":    p.Error,
	})
	pipe.Expire(ctx, key, progressTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store progress for document %s: %w", p.DocumentID, err)
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := b.rdb.Publish(ctx, key, payload).Err(); err != nil {
		// Stored state is authoritative; a missed notification only delays
		// subscribers until their next poll.
		slog.Warn("Failed to publish progress notification",
			"document_id", p.DocumentID, "error", err)
	}
	return nil
}

// Progress returns the latest stored progress for a document. The second
// return value is false when no state exists (expired or never published).
func (b *Bus) Progress(ctx context.Context, documentID string) (Progress, bool, error) {
	vals, err := b.rdb.HGetAll(ctx, progressKey(documentID)).Result()
	if err != nil {
		return Progress{}, false, fmt.Errorf("failed to read progress for document %s: %w", documentID, err)
	}
	if len(vals) == 0 {
		return Progress{}, false, nil
	}

	p := Progress{
		DocumentID: documentID,
		Stage:      vals["stage"],
		Error:      vals["error"],
	}
	fmt.Sscanf(vals["progress"], "%d", &p.Progress)
	return p, true, nil
}

// SubscribeProgress delivers progress updates for one document until the
// context is cancelled or the returned stop function is called.
func (b *Bus) SubscribeProgress(ctx context.Context, documentID string) (<-chan Progress, func()) {
	sub := b.rdb.Subscribe(ctx, progressKey(documentID))
	out := make(chan Progress, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var p Progress
			if err := json.Unmarshal([]byte(msg.Payload), &p); err != nil {
				slog.Warn("Dropping malformed progress message",
					"document_id", documentID, "error", err)
				continue
			}
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() { _ = sub.Close() }
	return out, stop
}

// RequestCancel marks a session for cancellation. The key expires on its own
// so a stop request for an idle session cannot cancel a later message.
func (b *Bus) RequestCancel(ctx context.Context, sessionID string) error {
	if err := b.rdb.Set(ctx, cancelKey(sessionID), "1", cancelTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cancel token for session %s: %w", sessionID, err)
	}
	return nil
}

// CancelRequested reports whether a cancellation token exists for the session.
func (b *Bus) CancelRequested(ctx context.Context, sessionID string) (bool, error) {
	n, err := b.rdb.Exists(ctx, cancelKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cancel token for session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// ClearCancel removes a consumed cancellation token.
func (b *Bus) ClearCancel(ctx context.Context, sessionID string) {
	if err := b.rdb.Del(ctx, cancelKey(sessionID)).Err(); err != nil {
		slog.Warn("Failed to clear cancel token", "session_id", sessionID, "error", err)
	}
}

// StaleProgressKeys returns document ids that still have progress state in
// Redis. The janitor cross-checks them against the documents table and drops
// entries whose document is gone.
func (b *Bus) StaleProgressKeys(ctx context.Context) ([]string, error) {
	var ids []string
	iter := b.rdb.Scan(ctx, 0, progressKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		ids = append(ids, key[len("doc:progress:"):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan progress keys: %w", err)
	}
	return ids, nil
}

// DropProgress deletes the stored progress state for a document.
func (b *Bus) DropProgress(ctx context.Context, documentID string) error {
	if err := b.rdb.Del(ctx, progressKey(documentID)).Err(); err != nil {
		return fmt.Errorf("failed to drop progress for document %s: %w", documentID, err)
	}
	return nil
}
