package services

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
	"github.com/lorekeep/lorekeep/ent/chatsession"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/models"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
	"github.com/lorekeep/lorekeep/test/util"
)

// stubRetriever returns a fixed context.
type stubRetriever struct {
	result *retrieval.Result
}

func (r *stubRetriever) Retrieve(context.Context, string, int, string, bool) (*retrieval.Result, error) {
	if r.result != nil {
		return r.result, nil
	}
	return &retrieval.Result{}, nil
}

// stubGenerator streams fixed chunks.
type stubGenerator struct {
	chunks []llm.StreamChunk
}

func (g *stubGenerator) StreamChat(ctx context.Context, _ []llm.Message) (<-chan llm.StreamChunk, error) {
	out := make(chan llm.StreamChunk)
	go func() {
		defer close(out)
		for _, c := range g.chunks {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// stubCancels records cancel requests and never reports one pending.
type stubCancels struct {
	mu        sync.Mutex
	requested []string
}

func (c *stubCancels) CancelRequested(context.Context, string) (bool, error) { return false, nil }
func (c *stubCancels) ClearCancel(context.Context, string)                   {}

func (c *stubCancels) RequestCancel(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested = append(c.requested, sessionID)
	return nil
}

type sessionFixture struct {
	client  *ent.Client
	svc     *SessionService
	cancels *stubCancels
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	cfg := config.ChatConfig{
		SessionTTL:      30 * time.Minute,
		HistoryTurns:    10,
		MaxMessageChars: 10000,
	}
	retr := &stubRetriever{result: &retrieval.Result{
		Items: []retrieval.ContextItem{{
			Kind: retrieval.KindVector,
			Text: "Our return window is 30 days.",
			Chunk: &vectorstore.ScoredChunk{Chunk: vectorstore.Chunk{
				DocumentID: "doc-1", Filename: "policy.pdf", Page: 4,
			}},
		}},
		Sources: []retrieval.Source{{
			Kind: "vector", DocumentID: "doc-1", Filename: "policy.pdf", Page: 4, Score: 0.88,
		}},
	}}
	gen := &stubGenerator{chunks: []llm.StreamChunk{
		{Content: "Returns are accepted "},
		{Content: "within 30 days."},
		{Usage: &llm.Usage{InputTokens: 80, OutputTokens: 6}},
	}}
	cancels := &stubCancels{}
	streamer := chat.NewStreamer(client, retr, gen, cancels, cfg)

	vectors := &fakeVectorCleaner{}
	graphs := &fakeGraphCleaner{}
	files := newFakeFileStore()
	bots := NewChatbotService(client, NewVersionService(client, vectors, graphs, files))

	return &sessionFixture{
		client:  client,
		svc:     NewSessionService(client, bots, streamer, cancels, cfg),
		cancels: cancels,
	}
}

func TestCreateSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	resp, err := f.svc.CreateSession(ctx, bot.AccessURL, models.CreateSessionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Hi, ask me anything.", resp.Greeting)
	assert.Empty(t, resp.InitialReply)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), resp.ExpiresAt, time.Minute)
}

func TestCreateSession_InitialMessageGetsSynchronousReply(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	resp, err := f.svc.CreateSession(ctx, bot.AccessURL, models.CreateSessionRequest{
		InitialMessage: "What is the return policy?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Returns are accepted within 30 days.", resp.InitialReply)

	// Both turns are persisted against the new session.
	n, err := f.client.Message.Query().
		Where(entmsg.SessionID(resp.SessionID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCreateSession_InactiveBotRejected(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusInactive, 1)

	_, err := f.svc.CreateSession(ctx, bot.AccessURL, models.CreateSessionRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSessionDetail_ScopedToTenant(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	botA := seedBot(t, f.client, chatbot.StatusActive, 1)
	botB := seedBot(t, f.client, chatbot.StatusActive, 1)

	resp, err := f.svc.CreateSession(ctx, botA.AccessURL, models.CreateSessionRequest{
		InitialMessage: "hello",
	})
	require.NoError(t, err)

	detail, err := f.svc.GetSessionDetail(ctx, botA.AccessURL, resp.SessionID)
	require.NoError(t, err)
	assert.Len(t, detail.Messages, 2)
	assert.Equal(t, entmsg.RoleUser, detail.Messages[0].Role)
	assert.Equal(t, entmsg.RoleAssistant, detail.Messages[1].Role)

	// The same session id under another tenant's slug does not resolve.
	_, err = f.svc.GetSessionDetail(ctx, botB.AccessURL, resp.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopGeneration_PublishesCancel(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	resp, err := f.svc.CreateSession(ctx, bot.AccessURL, models.CreateSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, f.svc.StopGeneration(ctx, bot.AccessURL, resp.SessionID))
	assert.Equal(t, []string{resp.SessionID}, f.cancels.requested)

	err = f.svc.StopGeneration(ctx, bot.AccessURL, "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPurgeExpired(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	mkSession := func(expiresAt time.Time) *ent.ChatSession {
		sess, err := f.client.ChatSession.Create().
			SetID(uuid.New().String()).
			SetChatbotID(bot.ID).
			SetExpiresAt(expiresAt).
			Save(ctx)
		require.NoError(t, err)
		return sess
	}
	stale := mkSession(time.Now().Add(-48 * time.Hour))
	graced := mkSession(time.Now().Add(-time.Hour))
	live := mkSession(time.Now().Add(time.Hour))

	n, err := f.svc.PurgeExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = f.client.ChatSession.Get(ctx, stale.ID)
	assert.True(t, ent.IsNotFound(err))
	for _, keep := range []*ent.ChatSession{graced, live} {
		exists, err := f.client.ChatSession.Query().
			Where(chatsession.ID(keep.ID)).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	}
}
