package cache

import "time"

// Cache is implemented by FileCache and Noop.
type Cache interface {
	Get(path string) ([]byte, bool)
	Entry(path string) (*Entry, bool)
	Set(path string, plaintext []byte, versionID string) error
	SetWithTTL(path string, plaintext []byte, ttl time.Duration, versionID string) error
	Invalidate(path string) error
	Clear() error
	Cleanup() (int, error)
	Stats() Stats
}

var (
	_ Cache = (*FileCache)(nil)
	_ Cache = (*Noop)(nil)
)

// Noop is used when caching is disabled. Every lookup misses.
type Noop struct{}

// NewNoop returns a disabled cache.
func NewNoop() *Noop {
	return &Noop{}
}

// Get always misses.
func (n *Noop) Get(path string) ([]byte, bool) { return nil, false }

// Entry always misses.
func (n *Noop) Entry(path string) (*Entry, bool) { return nil, false }

// Set discards the value.
func (n *Noop) Set(path string, plaintext []byte, versionID string) error { return nil }

// SetWithTTL discards the value.
func (n *Noop) SetWithTTL(path string, plaintext []byte, ttl time.Duration, versionID string) error {
	return nil
}

// Invalidate does nothing.
func (n *Noop) Invalidate(path string) error { return nil }

// Clear does nothing.
func (n *Noop) Clear() error { return nil }

// Cleanup removes nothing and reports zero entries.
func (n *Noop) Cleanup() (int, error) { return 0, nil }

// Stats returns zero counters.
func (n *Noop) Stats() Stats { return Stats{} }
