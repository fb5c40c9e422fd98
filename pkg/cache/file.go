package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps rendered artifacts on disk under a single directory.
// Each artifact lives in its own file, JSON-wrapped with its expiry, at a
// path derived from the key digest: the first two hex characters shard the
// directory so one render-heavy session does not pile thousands of files
// into a single folder.
type FileCache struct {
	dir string
}

// NewFileCache opens (creating if needed) an artifact cache rooted at dir.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// artifactEntry is the on-disk wrapper around a rendered artifact.
type artifactEntry struct {
	Artifact  []byte    `json:"artifact"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Get returns the artifact stored under key, reporting a miss for absent,
// unreadable, or expired entries. Expired and corrupt entries are removed
// on the way out.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry artifactEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && !time.Now().Before(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores an artifact under key. The entry is written to a temporary
// file and renamed into place so a concurrent Get never sees a torn write.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := artifactEntry{Artifact: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".artifact-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the artifact stored under key; a missing entry is fine.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; the cache holds no open handles between calls.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to its sharded on-disk location.
func (c *FileCache) entryPath(key string) string {
	digest := Hash([]byte(key))
	return filepath.Join(c.dir, digest[:2], digest[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
