package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driving"
	"github.com/hashmark-labs/hashmark-cli/internal/logger"
)

// Ensure BaselineService implements the interface.
var _ driving.BaselineService = (*BaselineService)(nil)

// BaselineService manages baseline records and verification.
//
// Every mutating operation is read-modify-write over the full
// collection: load, apply the change, save. Commands run one at a
// time, so there is no interleaving to guard against beyond the
// store's own locking.
type BaselineService struct {
	store    driven.BaselineStore
	digester driven.Digester
	now      func() time.Time
}

// NewBaselineService creates a new baseline service.
func NewBaselineService(store driven.BaselineStore, digester driven.Digester) *BaselineService {
	return &BaselineService{
		store:    store,
		digester: digester,
		now:      time.Now,
	}
}

// Register digests the file at path and stores a new baseline.
func (s *BaselineService) Register(ctx context.Context, path string) (*domain.Baseline, error) {
	if path == "" {
		return nil, domain.ErrInputMissing
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputMissing, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	digest, err := s.digester.File(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDigestFailure, err)
	}

	baseline := domain.Baseline{
		ID:           uuid.NewString(),
		Name:         filepath.Base(path),
		Size:         info.Size(),
		LastModified: info.ModTime().UnixMilli(),
		Digest:       digest,
		SavedAt:      s.now().UnixMilli(),
	}

	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	baselines = append(baselines, baseline)

	if err := s.store.Save(ctx, baselines); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	logger.Debug("registered baseline %s for %s (%s)", baseline.ID, baseline.Name, baseline.Digest)
	return &baseline, nil
}

// List returns all baselines in insertion order. Never nil.
func (s *BaselineService) List(ctx context.Context) ([]domain.Baseline, error) {
	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if baselines == nil {
		baselines = []domain.Baseline{}
	}
	return baselines, nil
}

// Get retrieves a baseline by ID.
func (s *BaselineService) Get(ctx context.Context, id string) (*domain.Baseline, error) {
	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	for i := range baselines {
		if baselines[i].ID == id {
			return &baselines[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Remove deletes the baseline with the given ID.
// Removing an absent ID is a no-op, not an error.
func (s *BaselineService) Remove(ctx context.Context, id string) error {
	baselines, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	kept := baselines[:0]
	for _, b := range baselines {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(baselines) {
		logger.Debug("remove: baseline %s not present, nothing to do", id)
		return nil
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Clear removes all baselines unconditionally.
func (s *BaselineService) Clear(ctx context.Context) error {
	if err := s.store.Save(ctx, []domain.Baseline{}); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// FindByDigest returns the first baseline in stored order whose digest
// equals the argument exactly (case-sensitive), or nil. First-in-order
// is the documented tie-break when duplicate digests exist.
func (s *BaselineService) FindByDigest(ctx context.Context, digest string) (*domain.Baseline, error) {
	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	for i := range baselines {
		if baselines[i].Digest == digest {
			return &baselines[i], nil
		}
	}
	return nil, nil
}

// FindByName returns all baselines whose name equals the argument
// exactly, in stored order.
func (s *BaselineService) FindByName(ctx context.Context, name string) ([]domain.Baseline, error) {
	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	var matches []domain.Baseline
	for _, b := range baselines {
		if b.Name == name {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// Verify digests the file at path and matches it against the store.
//
// The decision procedure is deterministic over three inputs: the
// computed digest, the candidate filename, and the store contents.
// Digest match beats name match; an empty store short-circuits.
func (s *BaselineService) Verify(ctx context.Context, path string) (*domain.VerifyResult, error) {
	if path == "" {
		return nil, domain.ErrInputMissing
	}

	digest, err := s.digester.File(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDigestFailure, err)
	}

	baselines, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	result := &domain.VerifyResult{Digest: digest}

	if len(baselines) == 0 {
		result.Status = domain.StatusNoBaselines
		return result, nil
	}

	for i := range baselines {
		if baselines[i].Digest == digest {
			result.Status = domain.StatusMatch
			result.Matched = &baselines[i]
			logger.Debug("verify %s: digest match on %s", path, baselines[i].ID)
			return result, nil
		}
	}

	name := filepath.Base(path)
	for _, b := range baselines {
		if b.Name == name {
			result.SameName = append(result.SameName, b)
		}
	}
	if len(result.SameName) > 0 {
		result.Status = domain.StatusNameMatch
		logger.Debug("verify %s: no digest match, %d name match(es)", path, len(result.SameName))
		return result, nil
	}

	result.Status = domain.StatusNoMatch
	return result, nil
}

// QuickVerify digests the file at path and compares it against the one
// baseline identified by id. Binary outcome, no name-hint fallback.
func (s *BaselineService) QuickVerify(ctx context.Context, id, path string) (*domain.QuickVerifyResult, error) {
	if path == "" {
		return nil, domain.ErrInputMissing
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	digest, err := s.digester.File(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDigestFailure, err)
	}

	return &domain.QuickVerifyResult{
		Match:  digest == record.Digest,
		Digest: digest,
		Record: *record,
	}, nil
}

// Export serialises the full collection as a JSON array with 2-space
// indentation, byte-for-byte the same shape as the persisted layout.
func (s *BaselineService) Export(ctx context.Context) ([]byte, error) {
	baselines, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(baselines, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling baselines: %w", err)
	}
	return data, nil
}
