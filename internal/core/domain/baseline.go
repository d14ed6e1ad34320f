package domain

import "time"

// DigestLength is the length of a hex-encoded SHA-256 digest.
const DigestLength = 64

// Baseline is a stored digest and metadata snapshot of a file at a
// point in time. It is the reference for later verification.
//
// JSON field names are fixed by the persisted layout and the export
// format; changing them breaks existing stores.
type Baseline struct {
	// ID is the unique identifier, generated at creation.
	ID string `json:"id"`

	// Name is the original filename at capture time.
	Name string `json:"name"`

	// Size is the byte length at capture time.
	Size int64 `json:"size"`

	// LastModified is the file's mtime at capture time, Unix milliseconds.
	LastModified int64 `json:"lastModified"`

	// Digest is the lowercase hex SHA-256 digest of the file content.
	Digest string `json:"digest"`

	// SavedAt is when the record was created, Unix milliseconds.
	SavedAt int64 `json:"savedAt"`
}

// SavedTime returns SavedAt as a time.Time.
func (b Baseline) SavedTime() time.Time {
	return time.UnixMilli(b.SavedAt)
}

// ModTime returns LastModified as a time.Time.
func (b Baseline) ModTime() time.Time {
	return time.UnixMilli(b.LastModified)
}

// ValidDigest reports whether s is a well-formed digest:
// exactly 64 lowercase hexadecimal characters.
func ValidDigest(s string) bool {
	if len(s) != DigestLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
