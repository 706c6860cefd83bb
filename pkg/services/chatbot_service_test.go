package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/pkg/models"
	"github.com/lorekeep/lorekeep/test/util"
)

type chatbotFixture struct {
	client  *ent.Client
	svc     *ChatbotService
	vectors *fakeVectorCleaner
	graphs  *fakeGraphCleaner
	files   *fakeFileStore
}

func newChatbotFixture(t *testing.T) *chatbotFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	vectors := &fakeVectorCleaner{}
	graphs := &fakeGraphCleaner{}
	files := newFakeFileStore()
	versions := NewVersionService(client, vectors, graphs, files)
	return &chatbotFixture{
		client:  client,
		svc:     NewChatbotService(client, versions),
		vectors: vectors,
		graphs:  graphs,
		files:   files,
	}
}

func TestCreateChatbot(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	bot, err := f.svc.CreateChatbot(ctx, models.CreateChatbotRequest{
		Name:      "Support Bot",
		AccessURL: "support-bot",
		Persona:   map[string]any{"name": "Sunny"},
	})
	require.NoError(t, err)
	assert.Equal(t, chatbot.StatusProcessing, bot.Status)
	assert.Equal(t, 0, bot.ActiveVersion)
	assert.Equal(t, "support-bot", bot.AccessURL)
}

func TestCreateChatbot_Validation(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateChatbotRequest
	}{
		{"empty name", models.CreateChatbotRequest{AccessURL: "valid-slug"}},
		{"uppercase slug", models.CreateChatbotRequest{Name: "Bot", AccessURL: "Support"}},
		{"leading hyphen", models.CreateChatbotRequest{Name: "Bot", AccessURL: "-support"}},
		{"trailing hyphen", models.CreateChatbotRequest{Name: "Bot", AccessURL: "support-"}},
		{"too short", models.CreateChatbotRequest{Name: "Bot", AccessURL: "ab"}},
		{"spaces", models.CreateChatbotRequest{Name: "Bot", AccessURL: "my bot"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateChatbot(ctx, tc.req)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateChatbot_DuplicateSlug(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	req := models.CreateChatbotRequest{Name: "First", AccessURL: "shared-slug"}
	_, err := f.svc.CreateChatbot(ctx, req)
	require.NoError(t, err)

	req.Name = "Second"
	_, err = f.svc.CreateChatbot(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetChatbotByAccessURL_HidesCleanupPending(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	bot := seedBot(t, f.client, chatbot.StatusCleanupPending, 0)
	_, err := f.svc.GetChatbotByAccessURL(ctx, bot.AccessURL)
	assert.ErrorIs(t, err, ErrNotFound)

	// Still reachable by id for the admin surface.
	got, err := f.svc.GetChatbot(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, bot.ID, got.ID)
}

func TestUpdateChatbot_PatchesOnlyProvidedFields(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	desc := "updated description"
	got, err := f.svc.UpdateChatbot(ctx, bot.ID, models.UpdateChatbotRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, got.Description)
	assert.Equal(t, bot.Name, got.Name)
	assert.Equal(t, bot.Persona["name"], got.Persona["name"])

	empty := ""
	_, err = f.svc.UpdateChatbot(ctx, bot.ID, models.UpdateChatbotRequest{Name: &empty})
	assert.True(t, IsValidationError(err))
}

func TestUpdateStatus_RejectsLifecycleStatuses(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	got, err := f.svc.UpdateStatus(ctx, bot.ID, "inactive")
	require.NoError(t, err)
	assert.Equal(t, chatbot.StatusInactive, got.Status)

	for _, status := range []string{"processing", "cleanup_pending", "bogus"} {
		_, err := f.svc.UpdateStatus(ctx, bot.ID, status)
		assert.True(t, IsValidationError(err), "status %q should be rejected", status)
	}
}

func TestDeleteChatbot_RemovesAllArtifacts(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	bot := seedBot(t, f.client, chatbot.StatusActive, 2)
	seedVersion(t, f.client, bot.ID, 1, "archived")
	seedVersion(t, f.client, bot.ID, 2, "active")
	seedDoc(t, f.client, bot.ID, 2, "completed")

	require.NoError(t, f.svc.DeleteChatbot(ctx, bot.ID))

	assert.ElementsMatch(t, []string{
		collectionKey(bot.ID, 1),
		collectionKey(bot.ID, 2),
	}, f.vectors.dropped)
	assert.Contains(t, f.graphs.deletedTenants, bot.ID)
	assert.Contains(t, f.files.removedTenants, bot.ID)

	_, err := f.client.Chatbot.Get(ctx, bot.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestDeleteChatbot_FailureDefersToJanitor(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()

	bot := seedBot(t, f.client, chatbot.StatusActive, 1)
	seedVersion(t, f.client, bot.ID, 1, "active")
	f.graphs.fail = true

	err := f.svc.DeleteChatbot(ctx, bot.ID)
	require.Error(t, err)

	// Row survives in cleanup_pending so the janitor can retry.
	got, err := f.client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, chatbot.StatusCleanupPending, got.Status)
}

func TestPersonaInfo(t *testing.T) {
	f := newChatbotFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	info, err := f.svc.PersonaInfo(ctx, bot.AccessURL)
	require.NoError(t, err)
	assert.Equal(t, "Lore", info.Name)
	assert.Equal(t, bot.Name, info.DisplayName)
	assert.Equal(t, "Hi, ask me anything.", info.Greeting)
}
