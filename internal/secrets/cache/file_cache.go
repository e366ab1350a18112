// Package cache provides the TTL-bounded on-disk cache of decrypted S3 secrets.
package cache

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

const (
	// DefaultTTL bounds how long a decrypted value is served without a backend call.
	DefaultTTL = time.Hour

	dirMode  = 0o700
	fileMode = 0o600
)

// Entry is the on-disk representation of a cached secret.
type Entry struct {
	Path       string    `json:"path"`
	Value      string    `json:"value"`
	FetchedAt  time.Time `json:"fetched_at"`
	TTLSeconds int64     `json:"ttl_seconds"`
	VersionID  string    `json:"version_id,omitempty"`
}

// TTL returns the entry's time to live.
func (e *Entry) TTL() time.Duration {
	return time.Duration(e.TTLSeconds) * time.Second
}

// Fresh reports whether now - fetched_at < ttl. An entry fetched in the future is stale.
func (e *Entry) Fresh(now time.Time) bool {
	if e.FetchedAt.After(now) {
		return false
	}
	return now.Sub(e.FetchedAt) < e.TTL()
}

// Stats counts cache lookups since the cache was opened.
type Stats struct {
	Hits    int64
	Misses  int64
	Expired int64
	Entries int
}

// HitRate returns hits / (hits + misses), or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a FileCache.
type Option func(*FileCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *FileCache) {
		c.now = now
	}
}

// WithTTL sets the default TTL for Set.
func WithTTL(ttl time.Duration) Option {
	return func(c *FileCache) {
		c.ttl = ttl
	}
}

// FileCache stores one JSON file per S3 path. Writes are atomic via temp file and
// rename, so concurrent processes never observe partial entries. Expired entries
// are not served and stay on disk until Cleanup.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	stats Stats
}

// New creates the cache directory with mode 0700 and returns the cache.
func New(dir string, opts ...Option) (*FileCache, error) {
	c := &FileCache{
		dir: dir,
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.Chmod(dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to set cache directory mode: %w", err)
	}
	return c, nil
}

// DefaultDir returns ~/.sindri/cache/secrets.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".sindri", "cache", "secrets"), nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.dir
}

// Get returns the cached plaintext when the entry is fresh.
// Stale entries are never served. The caller owns the returned buffer.
func (c *FileCache) Get(path string) ([]byte, bool) {
	entry, ok := c.read(path)
	if !ok {
		c.record(func(s *Stats) { s.Misses++ })
		return nil, false
	}

	if !entry.Fresh(c.now()) {
		c.record(func(s *Stats) {
			s.Expired++
			s.Misses++
		})
		return nil, false
	}

	value, err := base64.StdEncoding.DecodeString(entry.Value)
	if err != nil {
		c.record(func(s *Stats) { s.Misses++ })
		return nil, false
	}

	c.record(func(s *Stats) { s.Hits++ })
	return value, true
}

// Entry returns the entry metadata, fresh or not, without the value.
func (c *FileCache) Entry(path string) (*Entry, bool) {
	entry, ok := c.read(path)
	if !ok {
		return nil, false
	}
	entry.Value = ""
	return entry, true
}

// Set caches plaintext with the default TTL.
func (c *FileCache) Set(path string, plaintext []byte, versionID string) error {
	return c.SetWithTTL(path, plaintext, c.ttl, versionID)
}

// SetWithTTL caches plaintext with an explicit TTL.
func (c *FileCache) SetWithTTL(path string, plaintext []byte, ttl time.Duration, versionID string) error {
	entry := Entry{
		Path:       path,
		Value:      base64.StdEncoding.EncodeToString(plaintext),
		FetchedAt:  c.now().UTC(),
		TTLSeconds: int64(ttl / time.Second),
		VersionID:  versionID,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	defer cryptoDomain.Zero(data)

	return c.writeAtomic(c.file(path), data)
}

// Invalidate removes the entry for path. A missing entry is not an error.
func (c *FileCache) Invalidate(path string) error {
	if err := os.Remove(c.file(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (c *FileCache) Clear() error {
	files, err := c.entryFiles()
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove cache entry: %w", err)
		}
	}
	return nil
}

// Cleanup removes expired entries and returns how many were removed.
func (c *FileCache) Cleanup() (int, error) {
	files, err := c.entryFiles()
	if err != nil {
		return 0, err
	}

	now := c.now()
	removed := 0
	for _, file := range files {
		entry, ok := readEntry(file)
		if ok && entry.Fresh(now) {
			continue
		}
		if err := os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove cache entry: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Stats returns lookup counters and the number of entries on disk.
func (c *FileCache) Stats() Stats {
	c.mu.Lock()
	stats := c.stats
	c.mu.Unlock()

	if files, err := c.entryFiles(); err == nil {
		stats.Entries = len(files)
	}
	return stats
}

func (c *FileCache) record(update func(*Stats)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(&c.stats)
}

func (c *FileCache) read(path string) (*Entry, bool) {
	entry, ok := readEntry(c.file(path))
	if !ok || entry.Path != path {
		return nil, false
	}
	return entry, true
}

func (c *FileCache) file(path string) string {
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}

func (c *FileCache) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	files := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		files = append(files, filepath.Join(c.dir, name))
	}
	return files, nil
}

// writeAtomic writes data to a temp file in the cache dir and renames it over target.
func (c *FileCache) writeAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, ".entry-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("failed to set cache file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return fmt.Errorf("failed to commit cache file: %w", err)
	}
	committed = true
	return nil
}

func readEntry(file string) (*Entry, bool) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false
	}
	defer cryptoDomain.Zero(data)

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}
