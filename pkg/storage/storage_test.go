package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := New(t.TempDir(), 1024)
	require.NoError(t, err)

	path, size, err := store.Save("tenant-1", "doc-1", strings.NewReader("pdf bytes"), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
	assert.Equal(t, store.Path("tenant-1", "doc-1"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))

	require.NoError(t, store.Remove("tenant-1", "doc-1"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is fine
	assert.NoError(t, store.Remove("tenant-1", "doc-1"))
}

func TestSave_RejectsOversizeBeforeWrite(t *testing.T) {
	root := t.TempDir()
	store, err := New(root, 10)
	require.NoError(t, err)

	_, _, err = store.Save("tenant-1", "doc-1", strings.NewReader("irrelevant"), 11)
	assert.ErrorIs(t, err, ErrTooLarge)

	// No file or tenant directory was created
	_, statErr := os.Stat(store.Path("tenant-1", "doc-1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_RejectsLyingDeclaredSize(t *testing.T) {
	store, err := New(t.TempDir(), 10)
	require.NoError(t, err)

	_, _, err = store.Save("tenant-1", "doc-1", strings.NewReader(strings.Repeat("x", 20)), 5)
	assert.ErrorIs(t, err, ErrTooLarge)

	// The partial file was cleaned up
	_, statErr := os.Stat(store.Path("tenant-1", "doc-1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_ExactCapAllowed(t *testing.T) {
	store, err := New(t.TempDir(), 10)
	require.NoError(t, err)

	_, size, err := store.Save("tenant-1", "doc-1", strings.NewReader(strings.Repeat("x", 10)), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
}

func TestRemoveTenant(t *testing.T) {
	store, err := New(t.TempDir(), 1024)
	require.NoError(t, err)

	_, _, err = store.Save("tenant-1", "doc-1", strings.NewReader("a"), 1)
	require.NoError(t, err)
	_, _, err = store.Save("tenant-1", "doc-2", strings.NewReader("b"), 1)
	require.NoError(t, err)

	require.NoError(t, store.RemoveTenant("tenant-1"))
	_, statErr := os.Stat(store.Path("tenant-1", "doc-1"))
	assert.True(t, os.IsNotExist(statErr))
}
