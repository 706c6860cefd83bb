package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/pkg/bus"
	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
	"github.com/lorekeep/lorekeep/pkg/services"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
	testdb "github.com/lorekeep/lorekeep/test/database"
)

const testAdminToken = "test-admin-token"

// In-process fakes for the stores the services touch. HTTP tests exercise
// routing, auth and serialization; store behavior is covered in the
// packages that own it.

type nopVectors struct{}

func (nopVectors) DropCollection(context.Context, string, int) error           { return nil }
func (nopVectors) DeleteDocument(context.Context, string, int, string) error   { return nil }

type nopGraphs struct{}

func (nopGraphs) DeleteVersion(context.Context, string, int) error             { return nil }
func (nopGraphs) DeleteTenant(context.Context, string) error                   { return nil }
func (nopGraphs) RemoveDocument(context.Context, string, int, []string) error  { return nil }

type memFiles struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (m *memFiles) Save(tenantID, documentID string, r io.Reader, _ int64) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := tenantID + "/" + documentID + ".pdf"
	m.files[path] = data
	return path, int64(len(data)), nil
}

func (m *memFiles) RemovePath(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

func (m *memFiles) RemoveTenant(tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for path := range m.files {
		if strings.HasPrefix(path, tenantID+"/") {
			delete(m.files, path)
		}
	}
	return nil
}

type nopProgress struct{}

func (nopProgress) Progress(context.Context, string) (bus.Progress, bool, error) {
	return bus.Progress{}, false, nil
}
func (nopProgress) DropProgress(context.Context, string) error { return nil }

type fixedRetriever struct{}

func (fixedRetriever) Retrieve(context.Context, string, int, string, bool) (*retrieval.Result, error) {
	return &retrieval.Result{
		Items: []retrieval.ContextItem{{
			Kind: retrieval.KindVector,
			Text: "Shipping takes three days.",
			Chunk: &vectorstore.ScoredChunk{Chunk: vectorstore.Chunk{
				DocumentID: "doc-1", Filename: "faq.pdf", Page: 2,
			}},
		}},
		Sources: []retrieval.Source{{
			Kind: "vector", DocumentID: "doc-1", Filename: "faq.pdf", Page: 2, Score: 0.91,
		}},
	}, nil
}

type fixedGenerator struct{}

func (fixedGenerator) StreamChat(ctx context.Context, _ []llm.Message) (<-chan llm.StreamChunk, error) {
	out := make(chan llm.StreamChunk, 3)
	out <- llm.StreamChunk{Content: "Shipping takes "}
	out <- llm.StreamChunk{Content: "three days."}
	out <- llm.StreamChunk{Usage: &llm.Usage{InputTokens: 40, OutputTokens: 4}}
	close(out)
	return out, nil
}

type memCancels struct {
	mu        sync.Mutex
	requested []string
}

func (c *memCancels) CancelRequested(context.Context, string) (bool, error) { return false, nil }
func (c *memCancels) ClearCancel(context.Context, string)                   {}
func (c *memCancels) RequestCancel(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested = append(c.requested, sessionID)
	return nil
}

type apiFixture struct {
	e      *echo.Echo
	client *ent.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 0},
		Chat: config.ChatConfig{
			SessionTTL:      30 * time.Minute,
			HistoryTurns:    10,
			MaxMessageChars: 10000,
		},
		Storage: config.StorageConfig{MaxDocumentBytes: 1 << 20},
		Admin: config.AdminConfig{
			APIToken:           testAdminToken,
			RateLimitPerMinute: 1000,
		},
	}

	files := &memFiles{files: map[string][]byte{}}
	versions := services.NewVersionService(dbClient.Client, nopVectors{}, nopGraphs{}, files)
	chatbots := services.NewChatbotService(dbClient.Client, versions)
	documents := services.NewDocumentService(dbClient.Client, files, nopVectors{}, nopGraphs{}, nopProgress{}, versions)
	cancels := &memCancels{}
	streamer := chat.NewStreamer(dbClient.Client, fixedRetriever{}, fixedGenerator{}, cancels, cfg.Chat)
	sessions := services.NewSessionService(dbClient.Client, chatbots, streamer, cancels, cfg.Chat)
	stats := services.NewStatsService(dbClient.Client)

	srv := NewServer(dbClient, nil, chatbots, documents, versions, sessions, stats, cfg)
	return &apiFixture{e: srv.Router(), client: dbClient.Client}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/chatbots", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/chatbots", testAdminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatbotCRUD(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/chatbots", testAdminToken, map[string]any{
		"name":       "Docs Bot",
		"access_url": "docs-bot",
		"persona":    map[string]any{"name": "Dot", "greeting": "Hello!"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ent.Chatbot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, chatbot.StatusProcessing, created.Status)

	// Duplicate slug conflicts.
	rec = f.do(t, http.MethodPost, "/api/v1/chatbots", testAdminToken, map[string]any{
		"name":       "Other",
		"access_url": "docs-bot",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Invalid slug is a 400.
	rec = f.do(t, http.MethodPost, "/api/v1/chatbots", testAdminToken, map[string]any{
		"name":       "Bad",
		"access_url": "Bad Slug!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/chatbots/"+created.ID, testAdminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPatch, "/api/v1/chatbots/"+created.ID, testAdminToken, map[string]any{
		"description": "internal docs assistant",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	active := seedAPIBot(t, f.client, chatbot.StatusActive, 1)
	rec = f.do(t, http.MethodPatch, "/api/v1/chatbots/"+active.ID+"/status", testAdminToken, map[string]any{
		"status": "inactive",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodDelete, "/api/v1/chatbots/"+created.ID, testAdminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/chatbots/"+created.ID, testAdminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentUpload(t *testing.T) {
	f := newAPIFixture(t)
	bot := seedAPIBot(t, f.client, chatbot.StatusProcessing, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "handbook.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 content"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chatbots/"+bot.ID+"/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var doc ent.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "handbook.pdf", doc.Filename)
	assert.Equal(t, 1, doc.Version)

	rec = f.do(t, http.MethodGet, "/api/v1/chatbots/"+bot.ID+"/documents", testAdminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/chatbots/"+bot.ID+"/documents/"+doc.ID+"/progress", testAdminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestActivateVersionValidation(t *testing.T) {
	f := newAPIFixture(t)
	bot := seedAPIBot(t, f.client, chatbot.StatusProcessing, 0)

	rec := f.do(t, http.MethodPost, "/api/v1/chatbots/"+bot.ID+"/versions/zero/activate", testAdminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/chatbots/"+bot.ID+"/versions/3/activate", testAdminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicPersona(t *testing.T) {
	f := newAPIFixture(t)
	bot := seedAPIBot(t, f.client, chatbot.StatusActive, 1)

	rec := f.do(t, http.MethodGet, "/api/v1/chat/"+bot.AccessURL, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "greeting")
	// Internal persona fields like the system prompt never leave the server.
	assert.NotContains(t, rec.Body.String(), "system_prompt")

	rec = f.do(t, http.MethodGet, "/api/v1/chat/no-such-bot", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatSessionFlow(t *testing.T) {
	f := newAPIFixture(t)
	bot := seedAPIBot(t, f.client, chatbot.StatusActive, 1)

	rec := f.do(t, http.MethodPost, "/api/v1/chat/"+bot.AccessURL+"/sessions", "", map[string]any{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sess struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.SessionID)

	// Streamed reply comes back as SSE frames ending in [DONE].
	rec = f.do(t, http.MethodPost,
		"/api/v1/chat/"+bot.AccessURL+"/sessions/"+sess.SessionID+"/messages", "",
		map[string]any{"message": "How long does shipping take?"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	frames := parseSSEFrames(t, body)
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "data: [DONE]"))

	var sawContent, sawSources, sawDone bool
	var text string
	for _, frame := range frames {
		var ev chat.Event
		require.NoError(t, json.Unmarshal([]byte(frame), &ev))
		switch ev.Type {
		case chat.EventContent:
			sawContent = true
			text += ev.Content
		case chat.EventSources:
			sawSources = true
		case chat.EventDone:
			sawDone = true
		}
	}
	assert.True(t, sawContent)
	assert.True(t, sawSources)
	assert.True(t, sawDone)
	assert.Equal(t, "Shipping takes three days.", text)

	// Session detail shows both turns.
	rec = f.do(t, http.MethodGet,
		"/api/v1/chat/"+bot.AccessURL+"/sessions/"+sess.SessionID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "How long does shipping take?")

	// Stop endpoint accepts the request.
	rec = f.do(t, http.MethodPost,
		"/api/v1/chat/"+bot.AccessURL+"/sessions/"+sess.SessionID+"/stop", "", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

// parseSSEFrames extracts the json payloads of `data:` frames, excluding the
// [DONE] terminator.
func parseSSEFrames(t *testing.T, body string) []string {
	t.Helper()
	var frames []string
	for _, line := range strings.Split(body, "\n") {
		payload, ok := strings.CutPrefix(line, "data: ")
		if !ok || payload == "[DONE]" {
			continue
		}
		frames = append(frames, payload)
	}
	return frames
}

func seedAPIBot(t *testing.T, client *ent.Client, status chatbot.Status, activeVersion int) *ent.Chatbot {
	t.Helper()
	bot, err := client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName("API Bot").
		SetAccessURL("api-" + uuid.New().String()[:8]).
		SetStatus(status).
		SetActiveVersion(activeVersion).
		SetPersona(map[string]any{
			"name":          "Api",
			"greeting":      "Welcome!",
			"system_prompt": "You are a helpful assistant.",
		}).
		Save(context.Background())
	require.NoError(t, err)
	return bot
}
