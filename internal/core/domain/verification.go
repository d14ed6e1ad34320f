package domain

// VerifyStatus is the outcome category of a verification run.
type VerifyStatus string

const (
	// StatusMatch means a stored baseline has the exact same digest.
	StatusMatch VerifyStatus = "match"

	// StatusNameMatch means no digest matched, but at least one
	// baseline shares the candidate file's name. The file content
	// changed since that baseline was captured.
	StatusNameMatch VerifyStatus = "name-match"

	// StatusNoMatch means neither digest nor name matched anything.
	StatusNoMatch VerifyStatus = "no-match"

	// StatusNoBaselines means the store is empty.
	StatusNoBaselines VerifyStatus = "no-baselines"
)

// VerifyResult is the outcome of verifying a file against the whole
// baseline store. It is produced by a deterministic, side-effect-free
// decision over the computed digest, the candidate filename, and the
// store contents.
type VerifyResult struct {
	// Status is the outcome category.
	Status VerifyStatus `json:"status"`

	// Digest is the computed digest of the candidate file.
	// Always set, whatever the outcome.
	Digest string `json:"digest"`

	// Matched is the matching baseline when Status is StatusMatch.
	// When duplicate digests exist, the first record in stored order
	// wins.
	Matched *Baseline `json:"matched,omitempty"`

	// SameName holds the baselines sharing the candidate's filename
	// when Status is StatusNameMatch, in stored order.
	SameName []Baseline `json:"sameName,omitempty"`
}

// QuickVerifyResult is the outcome of verifying a file against one
// pre-selected baseline. Binary: the digests either match or they
// don't, with no name-hint fallback.
type QuickVerifyResult struct {
	// Match reports whether the computed digest equals the record's.
	Match bool `json:"match"`

	// Digest is the computed digest of the candidate file.
	Digest string `json:"digest"`

	// Record is the baseline the file was compared against.
	Record Baseline `json:"record"`
}
