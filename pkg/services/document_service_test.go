package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/bus"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
	"github.com/lorekeep/lorekeep/test/util"
)

type documentFixture struct {
	client   *ent.Client
	svc      *DocumentService
	files    *fakeFileStore
	vectors  *fakeDocVectors
	graphs   *fakeGraphCleaner
	progress *fakeProgressBus
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	files := newFakeFileStore()
	vectors := &fakeDocVectors{}
	graphs := &fakeGraphCleaner{}
	progress := &fakeProgressBus{entries: map[string]bus.Progress{}}
	versions := NewVersionService(client, &fakeVectorCleaner{}, graphs, files)
	return &documentFixture{
		client:   client,
		svc:      NewDocumentService(client, files, vectors, graphs, progress, versions),
		files:    files,
		vectors:  vectors,
		graphs:   graphs,
		progress: progress,
	}
}

func TestUpload(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusProcessing, 0)

	doc, err := f.svc.Upload(ctx, bot.ID, "Employee Handbook.PDF", strings.NewReader("%PDF-1.7 body"), 13)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, doc.Status)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, int64(13), doc.SizeBytes)
	assert.True(t, f.files.has(doc.StoredPath))
}

func TestUpload_Validation(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusProcessing, 0)

	_, err := f.svc.Upload(ctx, bot.ID, "", strings.NewReader("x"), 1)
	assert.True(t, IsValidationError(err))

	_, err = f.svc.Upload(ctx, bot.ID, "notes.docx", strings.NewReader("x"), 1)
	assert.True(t, IsValidationError(err))

	_, err = f.svc.Upload(ctx, "no-such-bot", "a.pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpload_StripsNulBytesFromFilename(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusProcessing, 0)

	doc, err := f.svc.Upload(ctx, bot.ID, "gui\x00de.pdf", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, "guide.pdf", doc.Filename)
}

func TestUpload_CarriesOverCompletedDocuments(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	bot := seedBot(t, f.client, chatbot.StatusActive, 1)
	seedVersion(t, f.client, bot.ID, 1, "active")
	completed := seedDoc(t, f.client, bot.ID, 1, "completed")
	seedDoc(t, f.client, bot.ID, 1, "failed") // failed docs are not carried

	doc, err := f.svc.Upload(ctx, bot.ID, "new.pdf", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version)

	v2docs, err := f.client.Document.Query().
		Where(
			document.ChatbotID(bot.ID),
			document.Version(2),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, v2docs, 2)

	var carried *ent.Document
	for _, d := range v2docs {
		if d.Filename == completed.Filename {
			carried = d
		}
	}
	require.NotNil(t, carried, "completed document should be cloned into the new version")
	assert.Equal(t, document.StatusPending, carried.Status)
	assert.Equal(t, completed.StoredPath, carried.StoredPath, "carried row reuses the stored file")

	// A second upload joins the same open version without another carry-over.
	doc2, err := f.svc.Upload(ctx, bot.ID, "more.pdf", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, doc2.Version)
	n, err := f.client.Document.Query().
		Where(document.ChatbotID(bot.ID), document.Version(2)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDeleteDocument_RejectsInFlight(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusProcessing, 0)
	doc := seedDoc(t, f.client, bot.ID, 1, "embedding")

	err := f.svc.DeleteDocument(ctx, bot.ID, doc.ID)
	assert.True(t, IsValidationError(err))
}

func TestDeleteDocument_CompletedCleansStores(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 1)

	doc := seedDoc(t, f.client, bot.ID, 1, "completed")
	doc, err := f.client.Document.UpdateOneID(doc.ID).SetChunkCount(3).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDocument(ctx, bot.ID, doc.ID))

	assert.Contains(t, f.vectors.deleted, collectionKey(bot.ID, 1)+"/"+doc.ID)
	wantChunks := []string{
		vectorstore.PointID(doc.ID, 0),
		vectorstore.PointID(doc.ID, 1),
		vectorstore.PointID(doc.ID, 2),
	}
	assert.Equal(t, wantChunks, f.graphs.removedChunks[collectionKey(bot.ID, 1)])
	assert.Contains(t, f.files.removedPaths, doc.StoredPath)

	_, err = f.client.Document.Get(ctx, doc.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestDeleteDocument_KeepsSharedFile(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusActive, 2)

	old := seedDoc(t, f.client, bot.ID, 1, "completed")
	// Carried-over twin in the next version shares the stored file.
	carried, err := f.client.Document.Create().
		SetID("carried-"+old.ID[:8]).
		SetChatbotID(bot.ID).
		SetFilename(old.Filename).
		SetStoredPath(old.StoredPath).
		SetSizeBytes(old.SizeBytes).
		SetStatus(document.StatusCompleted).
		SetVersion(2).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDocument(ctx, bot.ID, old.ID))
	assert.NotContains(t, f.files.removedPaths, old.StoredPath,
		"file still referenced by the carried-over row")

	require.NoError(t, f.svc.DeleteDocument(ctx, bot.ID, carried.ID))
	assert.Contains(t, f.files.removedPaths, old.StoredPath,
		"last reference gone, file removed")
}

func TestGetProgress(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	bot := seedBot(t, f.client, chatbot.StatusProcessing, 0)
	doc := seedDoc(t, f.client, bot.ID, 1, "embedding")

	// Live bus entry wins.
	f.progress.entries[doc.ID] = bus.Progress{DocumentID: doc.ID, Stage: "embed", Progress: 50}
	p, err := f.svc.GetProgress(ctx, bot.ID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "embed", p.Stage)
	assert.Equal(t, 50, p.Progress)

	// Without one, the document row is the source of truth.
	delete(f.progress.entries, doc.ID)
	p, err = f.svc.GetProgress(ctx, bot.ID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "embedding", p.Stage)
}

func TestGetDocument_ScopedToTenant(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	botA := seedBot(t, f.client, chatbot.StatusActive, 1)
	botB := seedBot(t, f.client, chatbot.StatusActive, 1)
	doc := seedDoc(t, f.client, botA.ID, 1, "completed")

	_, err := f.svc.GetDocument(ctx, botB.ID, doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
