package driven

import (
	"context"
	"io"
)

// Digester computes content digests.
//
// Implementations are deterministic pure functions over the input
// bytes: identical input always yields identical output, exactly 64
// lowercase hexadecimal characters. A digest fails only when the byte
// source cannot be read; zero-length input digests fine.
type Digester interface {
	// File digests the contents of the file at path.
	File(ctx context.Context, path string) (string, error)

	// Sum digests everything readable from r.
	Sum(r io.Reader) (string, error)
}
