package driving

import (
	"context"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

// BaselineService manages baseline records and verification.
type BaselineService interface {
	// Register digests the file at path and stores a new baseline.
	// Returns the created record.
	Register(ctx context.Context, path string) (*domain.Baseline, error)

	// List returns all baselines in insertion order.
	// Never nil: an empty store yields an empty slice.
	List(ctx context.Context) ([]domain.Baseline, error)

	// Get retrieves a baseline by ID.
	Get(ctx context.Context, id string) (*domain.Baseline, error)

	// Remove deletes the baseline with the given ID.
	// Removing an absent ID is a no-op, not an error.
	Remove(ctx context.Context, id string) error

	// Clear removes all baselines unconditionally.
	Clear(ctx context.Context) error

	// FindByDigest returns the first baseline in stored order whose
	// digest equals the argument exactly, or nil.
	FindByDigest(ctx context.Context, digest string) (*domain.Baseline, error)

	// FindByName returns all baselines whose name equals the argument
	// exactly, in stored order.
	FindByName(ctx context.Context, name string) ([]domain.Baseline, error)

	// Verify digests the file at path and matches it against the
	// whole store.
	Verify(ctx context.Context, path string) (*domain.VerifyResult, error)

	// QuickVerify digests the file at path and compares it against
	// the one baseline identified by id.
	QuickVerify(ctx context.Context, id, path string) (*domain.QuickVerifyResult, error)

	// Export serialises the full collection as an indented JSON array,
	// the same shape as the persisted layout.
	Export(ctx context.Context) ([]byte, error)
}
