package commands

import (
	"fmt"
	"log/slog"

	"github.com/sindri-dev/secrets/internal/secrets/cache"
)

// RunCacheStats prints the number of cached entries and the lookup counters.
func RunCacheStats(secretCache cache.Cache, tuple IOTuple, dir string, format string) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	stats := secretCache.Stats()
	if format == FormatJSON {
		return writeJSON(tuple.Writer, map[string]any{
			"dir":      dir,
			"entries":  stats.Entries,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"expired":  stats.Expired,
			"hit_rate": stats.HitRate(),
		})
	}

	_, _ = fmt.Fprintf(tuple.Writer, "Cache directory: %s\n", dir)
	_, _ = fmt.Fprintf(tuple.Writer, "Entries: %d\n", stats.Entries)
	_, _ = fmt.Fprintf(tuple.Writer, "Hits: %d, misses: %d, expired: %d (hit rate %.1f%%)\n",
		stats.Hits, stats.Misses, stats.Expired, stats.HitRate()*100)
	return nil
}

// RunCacheClear removes every cached secret.
func RunCacheClear(secretCache cache.Cache, logger *slog.Logger, tuple IOTuple) error {
	entries := secretCache.Stats().Entries
	if err := secretCache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	logger.Info("cache cleared", slog.Int("entries", entries))
	_, _ = fmt.Fprintf(tuple.Writer, "Removed %d cached secret(s)\n", entries)
	return nil
}

// RunCacheCleanup removes expired cached secrets.
func RunCacheCleanup(secretCache cache.Cache, logger *slog.Logger, tuple IOTuple) error {
	removed, err := secretCache.Cleanup()
	if err != nil {
		return fmt.Errorf("failed to clean up cache: %w", err)
	}

	logger.Info("cache cleaned up", slog.Int("removed", removed))
	_, _ = fmt.Fprintf(tuple.Writer, "Removed %d expired cached secret(s)\n", removed)
	return nil
}
