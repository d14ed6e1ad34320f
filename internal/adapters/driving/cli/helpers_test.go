package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/digest"
	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/storage/memory"
	"github.com/hashmark-labs/hashmark-cli/internal/core/services"
)

// fakeClipboard records written text instead of touching the system
// clipboard.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// setupTestServices wires the commands to a memory-backed service and a
// fake clipboard, restoring the previous wiring on cleanup.
func setupTestServices(t *testing.T) (*memory.BaselineStore, *fakeClipboard) {
	t.Helper()

	oldService := baselineService
	oldDigester := fileDigester
	oldClipboard := systemClipboard

	store := memory.NewBaselineStore()
	digester := digest.NewSHA256()
	clip := &fakeClipboard{}
	SetServices(services.NewBaselineService(store, digester), digester, clip)

	t.Cleanup(func() {
		baselineService = oldService
		fileDigester = oldDigester
		systemClipboard = oldClipboard
	})
	return store, clip
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTempFile creates a file with the given content and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
