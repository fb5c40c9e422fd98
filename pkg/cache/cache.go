// Package cache provides byte-level caching for rendered artifacts.
//
// The render command hashes its input file and options into a cache key so
// re-rendering an unchanged edge list is a disk read instead of a Graphviz
// invocation. Two backends implement the [Cache] interface: [FileCache] for
// normal CLI use and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact from the hash of
// the input bytes, the output format, and the render options fingerprint.
// Keys are namespaced under "render:" so other artifact classes can share a
// cache directory later without clashing.
func ArtifactKey(inputHash, format, opts string) string {
	return "render:" + artifactDigest(inputHash, format, opts)
}
