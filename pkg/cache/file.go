package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as files in a directory, so cached responses
// survive restarts. Filenames are derived from a SHA-256 hash of the key,
// which keeps arbitrary key strings safe on any filesystem. Expiry is based
// on file modification time.
//
// Multiple processes can share the same directory; the filesystem provides
// atomic file replacement.
type FileCache struct {
	dir string
}

// NewFileCache creates a cache rooted at dir, creating the directory if
// needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Get retrieves a value, treating expired entries as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.keyPath(key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if expiry := readExpiry(info); !expiry.IsZero() && time.Now().After(expiry) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. The ttl is recorded in the file modification time; a
// zero ttl means no expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.keyPath(key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if ttl > 0 {
		expiry := time.Now().Add(ttl)
		return os.Chtimes(path, expiry, expiry)
	}
	// Zero mod time marks entries without expiry.
	return os.Chtimes(path, time.Unix(0, 0), time.Unix(0, 0))
}

// Delete removes a value.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.keyPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; files are written synchronously.
func (c *FileCache) Close() error {
	return nil
}

// readExpiry recovers the expiry stored by Set. The zero Unix time means
// the entry never expires.
func readExpiry(info os.FileInfo) time.Time {
	mod := info.ModTime()
	if mod.Unix() == 0 {
		return time.Time{}
	}
	return mod
}

func (c *FileCache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}

var _ Cache = (*FileCache)(nil)
