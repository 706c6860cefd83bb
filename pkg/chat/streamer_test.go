package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/fault"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
	"github.com/lorekeep/lorekeep/test/util"
)

type fakeRetriever struct {
	result *retrieval.Result
	err    error
	calls  int
}

func (f *fakeRetriever) Retrieve(_ context.Context, _ string, _ int, _ string, _ bool) (*retrieval.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeGenerator struct {
	chunks []llm.StreamChunk
	err    error
	calls  int
}

func (f *fakeGenerator) StreamChat(ctx context.Context, _ []llm.Message) (<-chan llm.StreamChunk, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(chan llm.StreamChunk, len(f.chunks))
	go func() {
		defer close(out)
		for _, c := range f.chunks {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// fakeCancels reports a stop request starting at the given poll number.
type fakeCancels struct {
	stopAtPoll int
	polls      int
}

func (f *fakeCancels) CancelRequested(_ context.Context, _ string) (bool, error) {
	f.polls++
	return f.stopAtPoll > 0 && f.polls >= f.stopAtPoll, nil
}

func (f *fakeCancels) ClearCancel(_ context.Context, _ string) {}

func chatTestConfig() config.ChatConfig {
	return config.ChatConfig{
		SessionTTL:      30 * time.Minute,
		HistoryTurns:    10,
		MaxMessageChars: 10000,
	}
}

func seedSession(t *testing.T, client *ent.Client, activeVersion int, expiresAt time.Time) *ent.ChatSession {
	t.Helper()
	ctx := context.Background()

	bot, err := client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName("Helpbot").
		SetAccessURL("help-" + uuid.New().String()[:8]).
		SetStatus(chatbot.StatusActive).
		SetActiveVersion(activeVersion).
		SetPersona(map[string]any{"name": "Lore", "fallback_message": "Nothing on that, sorry."}).
		Save(ctx)
	require.NoError(t, err)

	sess, err := client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetChatbotID(bot.ID).
		SetExpiresAt(expiresAt).
		Save(ctx)
	require.NoError(t, err)
	return sess
}

func collectEvents(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatal("timed out draining event channel")
		}
	}
}

func singleChunkResult() *retrieval.Result {
	return &retrieval.Result{
		Items: []retrieval.ContextItem{{
			Kind: retrieval.KindVector,
			Text: "Photosynthesis is the process plants use to convert light.",
			Chunk: &vectorstore.ScoredChunk{Chunk: vectorstore.Chunk{
				DocumentID: "doc-1", Filename: "bio.pdf", Page: 1,
			}},
		}},
		Sources: []retrieval.Source{{
			Kind: "vector", DocumentID: "doc-1", Filename: "bio.pdf", Page: 1, Score: 0.9,
		}},
		Duration: 40 * time.Millisecond,
	}
}

func TestStream_HappyPath(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(time.Hour))

	gen := &fakeGenerator{chunks: []llm.StreamChunk{
		{Content: "Photosynthesis "},
		{Content: "is a process."},
		{Usage: &llm.Usage{InputTokens: 120, OutputTokens: 8}},
	}}
	s := NewStreamer(client, &fakeRetriever{result: singleChunkResult()}, gen, &fakeCancels{}, chatTestConfig())

	events, err := s.Stream(context.Background(), sess.ID, "Define photosynthesis")
	require.NoError(t, err)
	got := collectEvents(t, events)

	var stages []string
	var content string
	var sawSources, sawDone bool
	for _, ev := range got {
		switch ev.Type {
		case EventThinking:
			stages = append(stages, ev.Stage)
		case EventContent:
			content += ev.Content
		case EventSources:
			sawSources = true
			require.Len(t, ev.Sources, 1)
			assert.Equal(t, "bio.pdf", ev.Sources[0].Filename)
		case EventDone:
			sawDone = true
			assert.NotEmpty(t, ev.MessageID)
		case EventError:
			t.Fatalf("unexpected error event: %+v", ev)
		}
	}
	assert.Equal(t, []string{StageHistory, StageRetrieval, StageContextFound, StageGenerating}, stages)
	assert.Equal(t, "Photosynthesis is a process.", content)
	assert.True(t, sawSources)
	assert.True(t, sawDone)

	// Both turns persisted, counters incremented
	ctx := context.Background()
	msgs, err := client.Message.Query().
		Where(entmsg.SessionID(sess.ID)).
		Order(ent.Asc(entmsg.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entmsg.RoleUser, msgs[0].Role)
	assert.Equal(t, entmsg.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Photosynthesis is a process.", msgs[1].Content)
	assert.Equal(t, 120, msgs[1].InputTokens)
	assert.Equal(t, 8, msgs[1].OutputTokens)
	assert.Equal(t, 1, msgs[1].RetrievalCount)
	require.Len(t, msgs[1].Sources, 1)
	assert.Equal(t, "bio.pdf", msgs[1].Sources[0]["filename"])

	updated, err := client.ChatSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MessageCount)

	stat, err := client.DailyStat.Query().
		Where(dailystat.ChatbotID(sess.ChatbotID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stat.SessionCount, "first message of the session counts one session")
	assert.Equal(t, 2, stat.MessageCount)
	assert.Equal(t, int64(120), stat.InputTokens)
}

func TestStream_RejectsExpiredSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(-time.Minute))

	s := NewStreamer(client, &fakeRetriever{}, &fakeGenerator{}, &fakeCancels{}, chatTestConfig())
	_, err := s.Stream(context.Background(), sess.ID, "hello")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestStream_RejectsUnknownSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	s := NewStreamer(client, &fakeRetriever{}, &fakeGenerator{}, &fakeCancels{}, chatTestConfig())
	_, err := s.Stream(context.Background(), "no-such-session", "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStream_RejectsBadInput(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(time.Hour))

	cfg := chatTestConfig()
	cfg.MaxMessageChars = 10
	s := NewStreamer(client, &fakeRetriever{}, &fakeGenerator{}, &fakeCancels{}, cfg)

	_, err := s.Stream(context.Background(), sess.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = s.Stream(context.Background(), sess.ID, "this message is far too long")
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestStream_FallbackWhenNoActiveVersion(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 0, time.Now().Add(time.Hour))

	retr := &fakeRetriever{}
	gen := &fakeGenerator{}
	s := NewStreamer(client, retr, gen, &fakeCancels{}, chatTestConfig())

	events, err := s.Stream(context.Background(), sess.ID, "anything")
	require.NoError(t, err)
	got := collectEvents(t, events)

	assert.Zero(t, retr.calls, "no active version: retrieval is skipped")
	assert.Zero(t, gen.calls, "fallback answers do not call the model")

	var content string
	var sawDone bool
	for _, ev := range got {
		if ev.Type == EventContent {
			content += ev.Content
		}
		if ev.Type == EventDone {
			sawDone = true
		}
	}
	assert.Equal(t, "Nothing on that, sorry.", content, "persona fallback message")
	assert.True(t, sawDone)
}

func TestStream_CancellationPersistsPartial(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(time.Hour))

	gen := &fakeGenerator{chunks: []llm.StreamChunk{
		{Content: "first "},
		{Content: "second "},
		{Content: "third"},
	}}
	// First poll passes, second poll reports the stop request.
	cancels := &fakeCancels{stopAtPoll: 2}
	s := NewStreamer(client, &fakeRetriever{result: singleChunkResult()}, gen, cancels, chatTestConfig())

	events, err := s.Stream(context.Background(), sess.ID, "question")
	require.NoError(t, err)
	got := collectEvents(t, events)

	var contents []string
	for _, ev := range got {
		if ev.Type == EventContent {
			contents = append(contents, ev.Content)
		}
	}
	assert.Equal(t, []string{"first "}, contents, "no tokens after the stop request")

	ctx := context.Background()
	partial, err := client.Message.Query().
		Where(entmsg.SessionID(sess.ID), entmsg.RoleEQ(entmsg.RoleAssistant)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, partial.Cancelled)
	assert.False(t, partial.Failed)
	assert.Equal(t, "first ", partial.Content)
}

func TestStream_LLMFailureMarksMessageFailed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(time.Hour))

	gen := &fakeGenerator{chunks: []llm.StreamChunk{
		{Content: "partial "},
		{Err: fault.Transient(assert.AnError)},
	}}
	s := NewStreamer(client, &fakeRetriever{result: singleChunkResult()}, gen, &fakeCancels{}, chatTestConfig())

	events, err := s.Stream(context.Background(), sess.ID, "question")
	require.NoError(t, err)
	got := collectEvents(t, events)

	var errEv *Event
	for i := range got {
		if got[i].Type == EventError {
			errEv = &got[i]
		}
	}
	require.NotNil(t, errEv)
	assert.Equal(t, "transient", errEv.ErrorKind)

	ctx := context.Background()
	failed, err := client.Message.Query().
		Where(entmsg.SessionID(sess.ID), entmsg.RoleEQ(entmsg.RoleAssistant)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, failed.Failed)

	// The user message survives the failure
	userCount, err := client.Message.Query().
		Where(entmsg.SessionID(sess.ID), entmsg.RoleEQ(entmsg.RoleUser)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, userCount)
}

func TestStream_ThinkBlocksNeverReachTheClient(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 1, time.Now().Add(time.Hour))

	gen := &fakeGenerator{chunks: []llm.StreamChunk{
		{Content: "<think>reasoning about "},
		{Content: "the question</think>The answer."},
	}}
	s := NewStreamer(client, &fakeRetriever{result: singleChunkResult()}, gen, &fakeCancels{}, chatTestConfig())

	events, err := s.Stream(context.Background(), sess.ID, "question")
	require.NoError(t, err)

	var content string
	for _, ev := range collectEvents(t, events) {
		if ev.Type == EventContent {
			content += ev.Content
		}
	}
	assert.Equal(t, "The answer.", content)
}

func TestStream_HistoryExcludesCurrentTurn(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 0, time.Now().Add(time.Hour))

	s := NewStreamer(client, &fakeRetriever{}, &fakeGenerator{}, &fakeCancels{}, chatTestConfig())

	// Two turns; the second must see the first as history but not itself.
	events, err := s.Stream(context.Background(), sess.ID, "first question")
	require.NoError(t, err)
	collectEvents(t, events)

	history, err := s.loadHistory(context.Background(), sess.ID, "other-id")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first question", history[0].Content)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)

	filtered, err := s.loadHistory(context.Background(), sess.ID, mustFirstUserMessageID(t, client, sess.ID))
	require.NoError(t, err)
	require.Len(t, filtered, 1, "the current message id is excluded")
}

func TestLoadHistory_WindowIncludesCurrentTurn(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sess := seedSession(t, client, 0, time.Now().Add(time.Hour))
	ctx := context.Background()

	// Eleven completed turns before the twelfth question arrives.
	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 11; i++ {
		for _, role := range []entmsg.Role{entmsg.RoleUser, entmsg.RoleAssistant} {
			content := fmt.Sprintf("u%d", i)
			offset := time.Duration(2*i) * time.Minute
			if role == entmsg.RoleAssistant {
				content = fmt.Sprintf("a%d", i)
				offset += time.Minute
			}
			_, err := client.Message.Create().
				SetID(uuid.New().String()).
				SetSessionID(sess.ID).
				SetRole(role).
				SetContent(content).
				SetCreatedAt(base.Add(offset)).
				Save(ctx)
			require.NoError(t, err)
		}
	}

	s := NewStreamer(client, &fakeRetriever{}, &fakeGenerator{}, &fakeCancels{}, chatTestConfig())

	// With 10 turns total, the current message takes one slot: exactly the
	// last 9 completed turns (u3…a11) come back, u1/u2 fall out.
	history, err := s.loadHistory(ctx, sess.ID, "current-turn-id")
	require.NoError(t, err)
	require.Len(t, history, 18)
	assert.Equal(t, "u3", history[0].Content)
	assert.Equal(t, "a11", history[len(history)-1].Content)
}

func mustFirstUserMessageID(t *testing.T, client *ent.Client, sessionID string) string {
	t.Helper()
	m, err := client.Message.Query().
		Where(entmsg.SessionID(sessionID), entmsg.RoleEQ(entmsg.RoleUser)).
		Only(context.Background())
	require.NoError(t, err)
	return m.ID
}
