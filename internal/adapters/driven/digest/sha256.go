// Package digest implements the Digester port with SHA-256.
package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
)

// Ensure SHA256 implements the interface.
var _ driven.Digester = (*SHA256)(nil)

// SHA256 computes lowercase hex SHA-256 digests.
// Files are streamed rather than read whole, so large inputs
// do not spike memory.
type SHA256 struct{}

// NewSHA256 creates a new SHA-256 digester.
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// File digests the contents of the file at path.
func (d *SHA256) File(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	digest, err := d.Sum(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return digest, nil
}

// Sum digests everything readable from r.
func (d *SHA256) Sum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
