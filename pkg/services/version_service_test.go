package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/test/util"
)

func newVersionFixture(t *testing.T) (*ent.Client, *VersionService, *fakeVectorCleaner, *fakeGraphCleaner) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	vectors := &fakeVectorCleaner{}
	graphs := &fakeGraphCleaner{}
	return client, NewVersionService(client, vectors, graphs, newFakeFileStore()), vectors, graphs
}

func TestOpenVersionForIngest(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusProcessing, 0)

	// First upload ever opens version 1.
	v, opened, err := svc.OpenVersionForIngest(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, opened)

	// Uploads while a build is open join it.
	v, opened, err = svc.OpenVersionForIngest(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.False(t, opened)
}

func TestOpenVersionForIngest_AfterActivationOpensNext(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 1)
	seedVersion(t, client, bot.ID, 1, "active")

	v, opened, err := svc.OpenVersionForIngest(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.True(t, opened)
}

func TestHandleDocumentFinalized_ActivatesWhenAllDone(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusProcessing, 0)
	seedVersion(t, client, bot.ID, 1, "building")
	seedDoc(t, client, bot.ID, 1, "completed")
	seedDoc(t, client, bot.ID, 1, "failed")

	svc.HandleDocumentFinalized(ctx, bot.ID, 1)

	got, err := client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ActiveVersion)
	assert.Equal(t, chatbot.StatusActive, got.Status)

	v := mustVersion(t, client, bot.ID, 1)
	assert.Equal(t, buildversion.StatusActive, v.Status)
	assert.NotNil(t, v.ActivatedAt)
}

func TestHandleDocumentFinalized_WaitsForInFlight(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusProcessing, 0)
	seedVersion(t, client, bot.ID, 1, "building")
	seedDoc(t, client, bot.ID, 1, "completed")
	seedDoc(t, client, bot.ID, 1, "embedding")

	svc.HandleDocumentFinalized(ctx, bot.ID, 1)

	got, err := client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ActiveVersion)
	assert.Equal(t, buildversion.StatusBuilding, mustVersion(t, client, bot.ID, 1).Status)
}

func TestHandleDocumentFinalized_AllFailedStaysBuilding(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusProcessing, 0)
	seedVersion(t, client, bot.ID, 1, "building")
	seedDoc(t, client, bot.ID, 1, "failed")
	seedDoc(t, client, bot.ID, 1, "failed")

	svc.HandleDocumentFinalized(ctx, bot.ID, 1)

	got, err := client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ActiveVersion)
	// Version stays open so the admin can upload corrected documents into it.
	assert.Equal(t, buildversion.StatusBuilding, mustVersion(t, client, bot.ID, 1).Status)
}

func TestActivate_RejectsBuildingVersion(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusProcessing, 0)
	seedVersion(t, client, bot.ID, 1, "building")

	err := svc.Activate(ctx, bot.ID, 1)
	assert.ErrorIs(t, err, ErrVersionNotReady)
}

func TestActivate_ArchivesPredecessor(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 1)
	seedVersion(t, client, bot.ID, 1, "active")
	seedVersion(t, client, bot.ID, 2, "ready")

	require.NoError(t, svc.Activate(ctx, bot.ID, 2))

	assert.Equal(t, buildversion.StatusArchived, mustVersion(t, client, bot.ID, 1).Status)
	assert.Equal(t, buildversion.StatusActive, mustVersion(t, client, bot.ID, 2).Status)

	got, err := client.Chatbot.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ActiveVersion)
}

func TestActivate_Rollback(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 2)
	seedVersion(t, client, bot.ID, 1, "archived")
	seedVersion(t, client, bot.ID, 2, "active")

	// Archived versions can be re-activated to roll back a bad build.
	require.NoError(t, svc.Activate(ctx, bot.ID, 1))

	assert.Equal(t, buildversion.StatusActive, mustVersion(t, client, bot.ID, 1).Status)
	assert.Equal(t, buildversion.StatusArchived, mustVersion(t, client, bot.ID, 2).Status)
}

func TestActivate_Idempotent(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 1)
	seedVersion(t, client, bot.ID, 1, "active")

	require.NoError(t, svc.Activate(ctx, bot.ID, 1))
	assert.Equal(t, buildversion.StatusActive, mustVersion(t, client, bot.ID, 1).Status)
}

func TestActivate_UnknownVersion(t *testing.T) {
	client, svc, _, _ := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 1)
	seedVersion(t, client, bot.ID, 1, "active")

	err := svc.Activate(ctx, bot.ID, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDropVersionArtifacts(t *testing.T) {
	client, svc, vectors, graphs := newVersionFixture(t)
	ctx := context.Background()
	bot := seedBot(t, client, chatbot.StatusActive, 2)

	require.NoError(t, svc.DropVersionArtifacts(ctx, bot.ID, 1))
	assert.Contains(t, vectors.dropped, collectionKey(bot.ID, 1))
	assert.Contains(t, graphs.deletedVersions, collectionKey(bot.ID, 1))
}

func mustVersion(t *testing.T, client *ent.Client, botID string, version int) *ent.BuildVersion {
	t.Helper()
	v, err := client.BuildVersion.Query().
		Where(
			buildversion.ChatbotID(botID),
			buildversion.Version(version),
		).
		Only(context.Background())
	require.NoError(t, err)
	return v
}
