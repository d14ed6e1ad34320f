// Package domain defines the core business entities for hashmark.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Baseline: A stored digest + metadata snapshot of a file
//   - VerifyResult: The outcome of verifying a file against the store
//   - QuickVerifyResult: The outcome of verifying against one record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
