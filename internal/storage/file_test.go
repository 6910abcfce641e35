package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("sample", payload{Name: "widget", Count: 3}))

	var got payload
	require.NoError(t, store.Get("sample", &got))
	assert.Equal(t, payload{Name: "widget", Count: 3}, got)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var dest map[string]string
	assert.ErrorIs(t, store.Get("nope", &dest), ErrNotFound)
}

func TestFileStoreCorruptContentReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cartItems.json"), []byte("{not json"), 0o600))

	var dest []string
	assert.ErrorIs(t, store.Get("cartItems", &dest), ErrNotFound)
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("token", "abc"))
	require.NoError(t, store.Delete("token"))
	require.NoError(t, store.Delete("token"))

	var dest string
	assert.ErrorIs(t, store.Get("token", &dest), ErrNotFound)
}
