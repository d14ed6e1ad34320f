// Package memory provides in-memory driven adapters for testing.
package memory

import (
	"context"
	"sync"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
)

// Ensure BaselineStore implements the interface.
var _ driven.BaselineStore = (*BaselineStore)(nil)

// BaselineStore is an in-memory implementation of driven.BaselineStore.
type BaselineStore struct {
	mu        sync.RWMutex
	baselines []domain.Baseline

	// FailLoad and FailSave force the next calls to return the given
	// error, simulating medium failure in tests.
	FailLoad error
	FailSave error
}

// NewBaselineStore creates a new in-memory baseline store.
func NewBaselineStore() *BaselineStore {
	return &BaselineStore{}
}

// Load returns the full collection in insertion order.
func (s *BaselineStore) Load(_ context.Context) ([]domain.Baseline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailLoad != nil {
		return nil, s.FailLoad
	}
	out := make([]domain.Baseline, len(s.baselines))
	copy(out, s.baselines)
	return out, nil
}

// Save persists the full collection, replacing previous contents.
func (s *BaselineStore) Save(_ context.Context, baselines []domain.Baseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.baselines = make([]domain.Baseline, len(baselines))
	copy(s.baselines, baselines)
	return nil
}
