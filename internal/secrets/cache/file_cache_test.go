package cache

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(t *testing.T) (*FileCache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	c, err := New(filepath.Join(t.TempDir(), "cache"), WithClock(clock.Now))
	require.NoError(t, err)
	return c, clock
}

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	assert.Equal(t, dir, c.Dir())
}

func TestFileCache_TTL(t *testing.T) {
	c, clock := newTestCache(t)

	require.NoError(t, c.Set("prod/api-key", []byte("value-1"), "v1"))

	clock.Advance(1800 * time.Second)
	value, ok := c.Get("prod/api-key")
	require.True(t, ok)
	assert.Equal(t, []byte("value-1"), value)

	clock.Advance(1801 * time.Second)
	value, ok = c.Get("prod/api-key")
	assert.False(t, ok)
	assert.Nil(t, value)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Expired)
	assert.Equal(t, 1, stats.Entries, "expired entries are not purged on read")
	assert.InDelta(t, 0.5, stats.HitRate(), 0.0001)
}

func TestFileCache_TTLBoundaryIsExclusive(t *testing.T) {
	c, clock := newTestCache(t)
	require.NoError(t, c.SetWithTTL("p", []byte("v"), 10*time.Second, ""))

	clock.Advance(10 * time.Second)
	_, ok := c.Get("p")
	assert.False(t, ok)
}

func TestEntry_Fresh(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fetchedAt time.Time
		want      bool
	}{
		{name: "just fetched", fetchedAt: now, want: true},
		{name: "within ttl", fetchedAt: now.Add(-59 * time.Second), want: true},
		{name: "at ttl", fetchedAt: now.Add(-60 * time.Second), want: false},
		{name: "past ttl", fetchedAt: now.Add(-time.Hour), want: false},
		{name: "one second in the future", fetchedAt: now.Add(time.Second), want: false},
		{name: "far in the future", fetchedAt: now.Add(24 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{FetchedAt: tt.fetchedAt, TTLSeconds: 60}
			assert.Equal(t, tt.want, entry.Fresh(now))
		})
	}
}

func TestFileCache_FutureFetchedAtIsStale(t *testing.T) {
	c, clock := newTestCache(t)
	require.NoError(t, c.SetWithTTL("prod/db", []byte("password"), time.Hour, ""))

	clock.Advance(-10 * time.Minute)
	value, ok := c.Get("prod/db")
	assert.False(t, ok)
	assert.Nil(t, value)
	assert.Equal(t, int64(1), c.Stats().Expired)
}

func TestFileCache_FilesAreAtomicAndPrivate(t *testing.T) {
	c, _ := newTestCache(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set("prod/db", []byte("password"), ""))
	}

	entries, err := os.ReadDir(c.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileCache_ConcurrentWriters(t *testing.T) {
	c, _ := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Set("shared", []byte("same-value"), "v1"))
		}()
	}
	wg.Wait()

	value, ok := c.Get("shared")
	require.True(t, ok)
	assert.Equal(t, []byte("same-value"), value)
}

func TestFileCache_InvalidateClearCleanup(t *testing.T) {
	c, clock := newTestCache(t)

	require.NoError(t, c.Set("a", []byte("1"), ""))
	require.NoError(t, c.SetWithTTL("b", []byte("2"), time.Minute, ""))
	require.NoError(t, c.Set("c", []byte("3"), "v3"))

	require.NoError(t, c.Invalidate("a"))
	require.NoError(t, c.Invalidate("a"), "invalidating a missing entry is not an error")
	_, ok := c.Get("a")
	assert.False(t, ok)

	entry, ok := c.Entry("c")
	require.True(t, ok)
	assert.Equal(t, "v3", entry.VersionID)
	assert.Empty(t, entry.Value)

	clock.Advance(2 * time.Minute)
	removed, err := c.Cleanup()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok = c.Get("c")
	assert.True(t, ok)

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Stats().Entries)
}

func TestNoop(t *testing.T) {
	n := NewNoop()
	require.NoError(t, n.Set("a", []byte("1"), ""))
	_, ok := n.Get("a")
	assert.False(t, ok)
	_, ok = n.Entry("a")
	assert.False(t, ok)
	assert.NoError(t, n.Invalidate("a"))
	require.NoError(t, n.SetWithTTL("a", []byte("1"), time.Minute, "v1"))
	_, ok = n.Get("a")
	assert.False(t, ok)
	assert.NoError(t, n.Clear())
	removed, err := n.Cleanup()
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, Stats{}, n.Stats())
}
