package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoad_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	baselines, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, baselines)
	assert.Empty(t, baselines)
}

func TestSaveLoad_RoundTripPreservesOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []domain.Baseline{
		{ID: "id-3", Name: "c.txt", Size: 30, LastModified: 3000, Digest: "ccc", SavedAt: 300},
		{ID: "id-1", Name: "a.txt", Size: 10, LastModified: 1000, Digest: "aaa", SavedAt: 100},
		{ID: "id-2", Name: "b.txt", Size: 20, LastModified: 2000, Digest: "bbb", SavedAt: 200},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
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

func TestSave_EmptyCollectionClearsTable(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.Baseline{{ID: "id-1"}}))
	require.NoError(t, store.Save(ctx, nil))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, []domain.Baseline{{ID: "id-1", Name: "a.txt", Digest: "aaa"}}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	out, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.txt", out[0].Name)
}
