package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/test/util"
)

// recordingProcessor marks each document completed and remembers the order.
type recordingProcessor struct {
	client *ent.Client
	mu     sync.Mutex
	ids    []string
	delay  time.Duration
	fail   bool
}

func (r *recordingProcessor) Process(ctx context.Context, documentID string) error {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	r.ids = append(r.ids, documentID)
	r.mu.Unlock()

	status := document.StatusCompleted
	if r.fail {
		status = document.StatusFailed
	}
	return r.client.Document.UpdateOneID(documentID).
		SetStatus(status).
		SetProgress(100).
		Exec(ctx)
}

func (r *recordingProcessor) processed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

func queueTestConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentDocuments:  4,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		DocumentTimeout:         time.Minute,
		GracefulShutdownTimeout: time.Minute,
		OrphanDetectionInterval: time.Hour, // scans triggered manually in tests
		OrphanThreshold:         5 * time.Minute,
	}
}

func seedChatbot(t *testing.T, client *ent.Client) *ent.Chatbot {
	t.Helper()
	bot, err := client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName("Queue Bot").
		SetAccessURL("queue-" + uuid.New().String()[:8]).
		SetStatus(chatbot.StatusProcessing).
		Save(context.Background())
	require.NoError(t, err)
	return bot
}

func seedDocument(t *testing.T, client *ent.Client, chatbotID string, status document.Status, createdAt time.Time) *ent.Document {
	t.Helper()
	doc, err := client.Document.Create().
		SetID(uuid.New().String()).
		SetChatbotID(chatbotID).
		SetFilename("handbook.pdf").
		SetStoredPath("/data/handbook.pdf").
		SetSizeBytes(1024).
		SetStatus(status).
		SetVersion(1).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return doc
}

func TestClaimNextDocument_FIFO(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)
	older := seedDocument(t, client, bot.ID, document.StatusPending, time.Now().Add(-time.Minute))
	seedDocument(t, client, bot.ID, document.StatusPending, time.Now())

	w := NewWorker("w-0", "pod-a", client, queueTestConfig(), nil, nil)
	claimed, err := w.claimNextDocument(context.Background())
	require.NoError(t, err)

	assert.Equal(t, older.ID, claimed.ID, "oldest pending document is claimed first")
	assert.Equal(t, document.StatusParsing, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.LastInteractionAt)
	assert.Equal(t, 1, claimed.Attempts)
}

func TestClaimNextDocument_EmptyQueue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	w := NewWorker("w-0", "pod-a", client, queueTestConfig(), nil, nil)
	_, err := w.claimNextDocument(context.Background())
	assert.ErrorIs(t, err, ErrNoDocumentsAvailable)
}

func TestPollAndProcess_AtCapacity(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)
	seedDocument(t, client, bot.ID, document.StatusEmbedding, time.Now())
	seedDocument(t, client, bot.ID, document.StatusPending, time.Now())

	cfg := queueTestConfig()
	cfg.MaxConcurrentDocuments = 1

	w := NewWorker("w-0", "pod-a", client, cfg, nil, nil)
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestWorkerPool_ProcessesPendingDocuments(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)
	docA := seedDocument(t, client, bot.ID, document.StatusPending, time.Now().Add(-2*time.Second))
	docB := seedDocument(t, client, bot.ID, document.StatusPending, time.Now().Add(-time.Second))

	proc := &recordingProcessor{client: client}
	pool := NewWorkerPool("pod-a", client, queueTestConfig(), proc)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := client.Document.Query().
			Where(document.StatusEQ(document.StatusCompleted)).
			Count(context.Background())
		return err == nil && n == 2
	}, 10*time.Second, 50*time.Millisecond, "both documents should complete")

	ids := proc.processed()
	assert.ElementsMatch(t, []string{docA.ID, docB.ID}, ids)
}

func TestWorkerPool_GracefulStopWaitsForInFlight(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)
	doc := seedDocument(t, client, bot.ID, document.StatusPending, time.Now())

	proc := &recordingProcessor{client: client, delay: 300 * time.Millisecond}
	cfg := queueTestConfig()
	cfg.WorkerCount = 1

	pool := NewWorkerPool("pod-a", client, cfg, proc)
	require.NoError(t, pool.Start(context.Background()))

	// Wait until the worker has claimed the document, then stop.
	require.Eventually(t, func() bool {
		d, err := client.Document.Get(context.Background(), doc.ID)
		return err == nil && d.Status != document.StatusPending
	}, 5*time.Second, 20*time.Millisecond)

	pool.Stop()

	final, err := client.Document.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusCompleted, final.Status, "in-flight document finishes before shutdown")
}

func TestOrphanScan_RequeuesStaleDocuments(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)

	stale := seedDocument(t, client, bot.ID, document.StatusEmbedding, time.Now())
	err := client.Document.UpdateOneID(stale.ID).
		SetPodID("dead-pod").
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(context.Background())
	require.NoError(t, err)

	fresh := seedDocument(t, client, bot.ID, document.StatusEmbedding, time.Now())
	err = client.Document.UpdateOneID(fresh.ID).
		SetPodID("live-pod").
		SetLastInteractionAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", client, queueTestConfig(), nil)
	require.NoError(t, pool.detectAndRequeueOrphans(context.Background()))

	staleNow, err := client.Document.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, staleNow.Status)
	assert.Nil(t, staleNow.PodID)
	assert.Nil(t, staleNow.LastInteractionAt)

	freshNow, err := client.Document.Get(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusEmbedding, freshNow.Status, "healthy heartbeat is left alone")
}

func TestRequeueStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)

	mine := seedDocument(t, client, bot.ID, document.StatusGraphing, time.Now())
	require.NoError(t, client.Document.UpdateOneID(mine.ID).SetPodID("pod-a").Exec(context.Background()))

	other := seedDocument(t, client, bot.ID, document.StatusGraphing, time.Now())
	require.NoError(t, client.Document.UpdateOneID(other.ID).SetPodID("pod-b").Exec(context.Background()))

	require.NoError(t, RequeueStartupOrphans(context.Background(), client, "pod-a"))

	mineNow, err := client.Document.Get(context.Background(), mine.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, mineNow.Status)

	otherNow, err := client.Document.Get(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusGraphing, otherNow.Status, "other pods' documents are untouched")
}

func TestPoolHealth(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bot := seedChatbot(t, client)
	seedDocument(t, client, bot.ID, document.StatusPending, time.Now())

	pool := NewWorkerPool("pod-a", client, queueTestConfig(), &recordingProcessor{client: client})
	health := pool.Health()

	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Zero(t, health.ActiveDocuments)
}
