// Package fingerprint computes a content fingerprint of a parsed project,
// for the catalog indexer's deduplication and change-detection column.
//
// The core's own integrity concerns (detecting a truncated or malformed
// container) are handled structurally by the container codec itself and
// need no hashing. This is a different concern — "has this project's
// content changed since it was last indexed" — so it gets its own hash
// computed over the serialized project bytes, using blake2b rather than the
// stdlib crypto/sha256 the core might otherwise reach for, since this is
// the one place in the module designed to exercise golang.org/x/crypto.
package fingerprint

import "golang.org/x/crypto/blake2b"

// Size is the fingerprint length in bytes.
const Size = blake2b.Size256

// Of returns the blake2b-256 fingerprint of data (cmd/flpindex passes the
// whole re-serialized .flp file).
func Of(data []byte) [Size]byte {
	return blake2b.Sum256(data)
}
