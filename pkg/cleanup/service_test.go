package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/services"
	"github.com/lorekeep/lorekeep/test/util"
)

type stubCleaner struct {
	failGraph bool
}

func (s *stubCleaner) DropCollection(context.Context, string, int) error { return nil }
func (s *stubCleaner) DeleteVersion(context.Context, string, int) error  { return nil }
func (s *stubCleaner) DeleteTenant(context.Context, string) error {
	if s.failGraph {
		return errors.New("graph store unavailable")
	}
	return nil
}
func (s *stubCleaner) RemoveTenant(string) error { return nil }

type stubProgress struct {
	keys    []string
	dropped []string
}

func (s *stubProgress) StaleProgressKeys(context.Context) ([]string, error) {
	return s.keys, nil
}

func (s *stubProgress) DropProgress(_ context.Context, documentID string) error {
	s.dropped = append(s.dropped, documentID)
	return nil
}

func newJanitor(t *testing.T, cleaner *stubCleaner, progress *stubProgress) (*ent.Client, *Service) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	cfg := config.CleanupConfig{
		Interval:     time.Hour, // passes triggered manually in tests
		SessionGrace: 24 * time.Hour,
	}
	versions := services.NewVersionService(client, cleaner, cleaner, cleaner)
	bots := services.NewChatbotService(client, versions)
	sessions := services.NewSessionService(client, bots, nil, nil, config.ChatConfig{SessionTTL: 30 * time.Minute})

	return client, NewService(cfg, client, sessions, versions, progress)
}

func seedCleanupBot(t *testing.T, client *ent.Client, status chatbot.Status) *ent.Chatbot {
	t.Helper()
	bot, err := client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName("Janitor Bot").
		SetAccessURL("jan-" + uuid.New().String()[:8]).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return bot
}

func TestRunAll_PurgesExpiredSessions(t *testing.T) {
	progress := &stubProgress{}
	client, svc := newJanitor(t, &stubCleaner{}, progress)
	ctx := context.Background()
	bot := seedCleanupBot(t, client, chatbot.StatusActive)

	mk := func(expiresAt time.Time) string {
		sess, err := client.ChatSession.Create().
			SetID(uuid.New().String()).
			SetChatbotID(bot.ID).
			SetExpiresAt(expiresAt).
			Save(ctx)
		require.NoError(t, err)
		return sess.ID
	}
	stale := mk(time.Now().Add(-48 * time.Hour))
	live := mk(time.Now().Add(time.Hour))

	svc.RunAll(ctx)

	exists, err := client.ChatSession.Query().Where(chatsession.ID(stale)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.ChatSession.Query().Where(chatsession.ID(live)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunAll_RetriesDeferredTenantCleanup(t *testing.T) {
	cleaner := &stubCleaner{failGraph: true}
	client, svc := newJanitor(t, cleaner, &stubProgress{})
	ctx := context.Background()

	bot := seedCleanupBot(t, client, chatbot.StatusCleanupPending)

	// While the graph store is down the row stays pending.
	svc.RunAll(ctx)
	got, err := client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, chatbot.StatusCleanupPending, got.Status)

	// Once it recovers the next pass finishes the teardown.
	cleaner.failGraph = false
	svc.RunAll(ctx)
	_, err = client.Chatbot.Get(ctx, bot.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestRunAll_DropsStaleProgressKeys(t *testing.T) {
	progress := &stubProgress{}
	client, svc := newJanitor(t, &stubCleaner{}, progress)
	ctx := context.Background()
	bot := seedCleanupBot(t, client, chatbot.StatusActive)

	doc, err := client.Document.Create().
		SetID(uuid.New().String()).
		SetChatbotID(bot.ID).
		SetFilename("kept.pdf").
		SetStoredPath("/tmp/kept.pdf").
		SetSizeBytes(1).
		SetStatus(document.StatusPending).
		SetVersion(1).
		Save(ctx)
	require.NoError(t, err)

	progress.keys = []string{doc.ID, "deleted-doc-id"}
	svc.RunAll(ctx)

	assert.Equal(t, []string{"deleted-doc-id"}, progress.dropped,
		"only keys without a document row are dropped")
}
