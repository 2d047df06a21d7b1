package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlotStoreRoundTrip(t *testing.T) {
	store, err := NewFileSlotStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := store.Load(ctx, "history")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "history", []byte(`[{"id":"1"}]`)))

	b, found, err := store.Load(ctx, "history")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, string(b))
}

func TestFileSlotStoreSaveReplaces(t *testing.T) {
	store, err := NewFileSlotStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "history", []byte("old")))
	require.NoError(t, store.Save(ctx, "history", []byte("new")))

	b, found, err := store.Load(ctx, "history")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", string(b))
}

func TestFileSlotStoreClearRemovesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileSlotStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "history", []byte("x")))
	require.NoError(t, store.Clear(ctx, "history"))

	_, statErr := os.Stat(filepath.Join(dir, "history.json"))
	assert.True(t, os.IsNotExist(statErr), "slot file must be gone")

	// clearing an absent slot is not an error
	assert.NoError(t, store.Clear(ctx, "history"))
}
