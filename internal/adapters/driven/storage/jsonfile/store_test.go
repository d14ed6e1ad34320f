package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoad_NoFileYieldsEmpty(t *testing.T) {
	store := newTestStore(t)

	baselines, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, baselines)
	assert.Empty(t, baselines)
}

func TestSaveLoad_RoundTripPreservesOrderAndFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []domain.Baseline{
		{ID: "id-1", Name: "a.txt", Size: 10, LastModified: 1600000000000, Digest: "aaa", SavedAt: 1700000000000},
		{ID: "id-2", Name: "b.txt", Size: 20, LastModified: 1600000001000, Digest: "bbb", SavedAt: 1700000001000},
		{ID: "id-3", Name: "a.txt", Size: 11, LastModified: 1600000002000, Digest: "aaa", SavedAt: 1700000002000},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_MalformedFileTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	baselines, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, baselines)
}

func TestLoad_WrongShapeTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"id":"not-an-array"}`), 0600))

	baselines, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, baselines)
}

func TestSave_EmptyWritesArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_PersistedShapeMatchesExportLayout(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []domain.Baseline{{ID: "id-1", Name: "a.txt", Size: 10, Digest: "abc"}}
	require.NoError(t, store.Save(ctx, in))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"id", "name", "size", "lastModified", "digest", "savedAt"} {
		assert.Contains(t, raw[0], key)
	}
}

func TestSave_ReplacesPreviousContents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.Baseline{{ID: "id-1"}, {ID: "id-2"}}))
	require.NoError(t, store.Save(ctx, []domain.Baseline{{ID: "id-2"}}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "id-2", out[0].ID)
}
