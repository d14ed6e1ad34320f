package driven

import (
	"context"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

// BaselineStore persists the baseline collection as a whole.
//
// The store is a simple load/save repository: mutating operations in
// the core are read-modify-write over the full collection. Insertion
// order is significant and must survive a Load/Save round-trip.
type BaselineStore interface {
	// Load returns the full collection in insertion order.
	// An absent or malformed persisted collection yields an empty
	// slice, not an error; errors are reserved for genuine medium
	// failures.
	Load(ctx context.Context) ([]domain.Baseline, error)

	// Save persists the full collection, replacing previous contents.
	Save(ctx context.Context, baselines []domain.Baseline) error
}
