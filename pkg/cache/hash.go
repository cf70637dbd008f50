package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ImageKey generates the cache key for a rendered identicon.
// The key format is: png:etag:width[:inv]
//
// The etag is already a hex digest, so the key needs no further hashing;
// backends that require filesystem-safe names hash it themselves.
func ImageKey(etag string, width int, inverted bool) string {
	if inverted {
		return fmt.Sprintf("png:%s:%d:inv", etag, width)
	}
	return fmt.Sprintf("png:%s:%d", etag, width)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
