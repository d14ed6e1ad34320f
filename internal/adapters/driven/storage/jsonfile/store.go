// Package jsonfile stores the baseline collection as a single JSON
// document on disk. This is the default storage backend: the persisted
// shape is the same JSON array the export command produces.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
	"github.com/hashmark-labs/hashmark-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.BaselineStore = (*Store)(nil)

// Store is a file-backed implementation of driven.BaselineStore.
//
// The whole collection lives in one file. Absent or malformed content
// loads as an empty collection, never an error: availability wins over
// strict validation. Saves are atomic (write temp file, rename).
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a JSON file store at the specified data directory.
// If dataDir is empty, defaults to ~/.hashmark/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".hashmark", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: filepath.Join(dataDir, "baselines.json")}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the full collection in insertion order.
func (s *Store) Load(_ context.Context) ([]domain.Baseline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Baseline{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var baselines []domain.Baseline
	if err := json.Unmarshal(data, &baselines); err != nil {
		// Corrupt store: treat as empty rather than failing every command.
		logger.Warn("malformed baseline store %s, treating as empty: %v", s.path, err)
		return []domain.Baseline{}, nil
	}
	if baselines == nil {
		baselines = []domain.Baseline{}
	}
	return baselines, nil
}

// Save persists the full collection, replacing previous contents.
func (s *Store) Save(_ context.Context, baselines []domain.Baseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if baselines == nil {
		baselines = []domain.Baseline{}
	}
	data, err := json.MarshalIndent(baselines, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling baselines: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
