package digest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

// Known SHA-256 of the empty input.
const emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// Known SHA-256 of "abc".
const abcDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestSum_EmptyInput(t *testing.T) {
	d := NewSHA256()

	digest, err := d.Sum(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, emptyDigest, digest)
}

func TestSum_KnownVector(t *testing.T) {
	d := NewSHA256()

	digest, err := d.Sum(strings.NewReader("abc"))

	require.NoError(t, err)
	assert.Equal(t, abcDigest, digest)
}

func TestSum_Deterministic(t *testing.T) {
	d := NewSHA256()

	first, err := d.Sum(strings.NewReader("hello world"))
	require.NoError(t, err)
	second, err := d.Sum(strings.NewReader("hello world"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, domain.ValidDigest(first))
}

func TestSum_DifferentInputsDiffer(t *testing.T) {
	d := NewSHA256()

	a, err := d.Sum(strings.NewReader("hello world"))
	require.NoError(t, err)
	b, err := d.Sum(strings.NewReader("hello worle"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFile_DigestsContents(t *testing.T) {
	d := NewSHA256()
	path := filepath.Join(t.TempDir(), "abc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0600))

	digest, err := d.File(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, abcDigest, digest)
}

func TestFile_MissingFile(t *testing.T) {
	d := NewSHA256()

	_, err := d.File(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestFile_CancelledContext(t *testing.T) {
	d := NewSHA256()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.File(ctx, "irrelevant")

	assert.ErrorIs(t, err, context.Canceled)
}
