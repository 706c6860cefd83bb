package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent/document"
	testdb "github.com/lorekeep/lorekeep/test/database"
)

// TestCrossReplicaClaiming verifies that two replicas sharing one database
// never process the same document: FOR UPDATE SKIP LOCKED makes each claim
// exclusive.
func TestCrossReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)

	bot := seedChatbot(t, clientA.Client)
	for i := 0; i < 6; i++ {
		seedDocument(t, clientA.Client, bot.ID, document.StatusPending,
			time.Now().Add(time.Duration(i)*time.Millisecond))
	}

	procA := &recordingProcessor{client: clientA.Client}
	procB := &recordingProcessor{client: clientB.Client}

	cfg := queueTestConfig()
	poolA := NewWorkerPool("pod-a", clientA.Client, cfg, procA)
	poolB := NewWorkerPool("pod-b", clientB.Client, cfg, procB)

	require.NoError(t, poolA.Start(context.Background()))
	require.NoError(t, poolB.Start(context.Background()))
	defer poolA.Stop()
	defer poolB.Stop()

	require.Eventually(t, func() bool {
		n, err := clientA.Client.Document.Query().
			Where(document.StatusEQ(document.StatusCompleted)).
			Count(context.Background())
		return err == nil && n == 6
	}, 15*time.Second, 50*time.Millisecond, "all documents should complete across replicas")

	// No document processed twice
	seen := map[string]int{}
	for _, id := range append(procA.processed(), procB.processed()...) {
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "document %s processed more than once", id)
	}
	assert.Len(t, seen, 6)
}

// TestCrossReplicaOrphanRecovery verifies that a surviving replica requeues
// documents abandoned by a dead one.
func TestCrossReplicaOrphanRecovery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)

	bot := seedChatbot(t, clientA.Client)
	doc := seedDocument(t, clientA.Client, bot.ID, document.StatusExtracting, time.Now())
	require.NoError(t, clientA.Client.Document.UpdateOneID(doc.ID).
		SetPodID("pod-a").
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(context.Background()))

	// Replica B runs the scan; replica A is "dead".
	poolB := NewWorkerPool("pod-b", clientB.Client, queueTestConfig(), nil)
	require.NoError(t, poolB.detectAndRequeueOrphans(context.Background()))

	recovered, err := clientB.Client.Document.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, recovered.Status)
	assert.Nil(t, recovered.PodID)
}
