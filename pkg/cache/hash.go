package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// artifactDigest hashes the parts that determine a rendered artifact's bytes
// into one hex digest. Parts are separated by a NUL byte so adjacent parts
// cannot collide by concatenation ("ab","c" vs "a","bc").
func artifactDigest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Hash fingerprints an input edge-list file. The full 64-character hex
// digest is used; artifact keys must never collide across inputs.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
