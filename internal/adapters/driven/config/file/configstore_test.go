package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_StartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("storage")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("storage"))
}

func TestSetGet_RoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage", "sqlite"))

	assert.Equal(t, "sqlite", store.GetString("storage"))
}

func TestSet_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("data_dir", "/tmp/hashmark"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hashmark", reopened.GetString("data_dir"))
}

func TestGetInt_HandlesTomlInt64(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("limit = 42\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 42, store.GetInt("limit"))
}

func TestGetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("verbose", true))

	assert.True(t, store.GetBool("verbose"))
	assert.False(t, store.GetBool("missing"))
}

func TestGetString_WrongTypeYieldsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("limit", int64(3)))

	assert.Equal(t, "", store.GetString("limit"))
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
