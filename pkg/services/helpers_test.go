package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/pkg/bus"
)

var errSubsystemDown = errors.New("subsystem unavailable")

func collectionKey(tenantID string, version int) string {
	return fmt.Sprintf("%s/v%d", tenantID, version)
}

// fakeVectorCleaner records dropped collections.
type fakeVectorCleaner struct {
	mu      sync.Mutex
	dropped []string
	fail    bool
}

func (f *fakeVectorCleaner) DropCollection(_ context.Context, tenantID string, version int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errSubsystemDown
	}
	f.dropped = append(f.dropped, collectionKey(tenantID, version))
	return nil
}

// fakeDocVectors records per-document deletions.
type fakeDocVectors struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeDocVectors) DeleteDocument(_ context.Context, tenantID string, version int, documentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, collectionKey(tenantID, version)+"/"+documentID)
	return nil
}

// fakeGraphCleaner records tenant, version and chunk deletions.
type fakeGraphCleaner struct {
	mu              sync.Mutex
	deletedTenants  []string
	deletedVersions []string
	removedChunks   map[string][]string
	fail            bool
}

func (f *fakeGraphCleaner) DeleteVersion(_ context.Context, tenantID string, version int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedVersions = append(f.deletedVersions, collectionKey(tenantID, version))
	return nil
}

func (f *fakeGraphCleaner) DeleteTenant(_ context.Context, tenantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errSubsystemDown
	}
	f.deletedTenants = append(f.deletedTenants, tenantID)
	return nil
}

func (f *fakeGraphCleaner) RemoveDocument(_ context.Context, tenantID string, version int, chunkIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removedChunks == nil {
		f.removedChunks = map[string][]string{}
	}
	key := collectionKey(tenantID, version)
	f.removedChunks[key] = append(f.removedChunks[key], chunkIDs...)
	return nil
}

// fakeFileStore keeps uploads in memory. It serves both the upload path
// (FileStore) and tenant cleanup (FileCleaner).
type fakeFileStore struct {
	mu             sync.Mutex
	files          map[string][]byte
	removedPaths   []string
	removedTenants []string
	saveErr        error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (f *fakeFileStore) Save(tenantID, documentID string, r io.Reader, _ int64) (string, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", 0, f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := tenantID + "/" + documentID + ".pdf"
	f.files[path] = data
	return path, int64(len(data)), nil
}

func (f *fakeFileStore) RemovePath(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	f.removedPaths = append(f.removedPaths, path)
	return nil
}

func (f *fakeFileStore) RemoveTenant(tenantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for path := range f.files {
		if strings.HasPrefix(path, tenantID+"/") {
			delete(f.files, path)
		}
	}
	f.removedTenants = append(f.removedTenants, tenantID)
	return nil
}

func (f *fakeFileStore) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok
}

// fakeProgressBus is an in-memory ProgressBus.
type fakeProgressBus struct {
	mu      sync.Mutex
	entries map[string]bus.Progress
	dropped []string
}

func (f *fakeProgressBus) Progress(_ context.Context, documentID string) (bus.Progress, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.entries[documentID]
	return p, ok, nil
}

func (f *fakeProgressBus) DropProgress(_ context.Context, documentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, documentID)
	f.dropped = append(f.dropped, documentID)
	return nil
}

func seedBot(t *testing.T, client *ent.Client, status chatbot.Status, activeVersion int) *ent.Chatbot {
	t.Helper()
	bot, err := client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName("Handbook Bot").
		SetAccessURL("bot-" + uuid.New().String()[:8]).
		SetStatus(status).
		SetActiveVersion(activeVersion).
		SetPersona(map[string]any{
			"name":             "Lore",
			"greeting":         "Hi, ask me anything.",
			"fallback_message": "Nothing on that, sorry.",
		}).
		Save(context.Background())
	require.NoError(t, err)
	return bot
}

func seedDoc(t *testing.T, client *ent.Client, botID string, version int, status document.Status) *ent.Document {
	t.Helper()
	doc, err := client.Document.Create().
		SetID(uuid.New().String()).
		SetChatbotID(botID).
		SetFilename("guide.pdf").
		SetStoredPath("/tmp/" + uuid.New().String() + ".pdf").
		SetSizeBytes(2048).
		SetStatus(status).
		SetVersion(version).
		Save(context.Background())
	require.NoError(t, err)
	return doc
}

func seedVersion(t *testing.T, client *ent.Client, botID string, version int, status buildversion.Status) *ent.BuildVersion {
	t.Helper()
	create := client.BuildVersion.Create().
		SetID(uuid.New().String()).
		SetChatbotID(botID).
		SetVersion(version).
		SetStatus(status)
	if status == buildversion.StatusActive {
		create = create.SetActivatedAt(time.Now())
	}
	v, err := create.Save(context.Background())
	require.NoError(t, err)
	return v
}
