package commands

import (
	"context"
	"fmt"
	"log/slog"

	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// RunList prints the stored secret paths, optionally filtered by a doublestar glob.
func RunList(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	filter string,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	paths, err := storeUseCase.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list secrets: %w", err)
	}

	logger.Debug("secrets listed", slog.Int("count", len(paths)), slog.String("filter", filter))

	if format == FormatJSON {
		return writeJSON(tuple.Writer, map[string]any{
			"count":   len(paths),
			"filter":  filter,
			"secrets": paths,
		})
	}

	if len(paths) == 0 {
		_, _ = fmt.Fprintln(tuple.Writer, "No secrets found")
		return nil
	}
	_, _ = fmt.Fprintf(tuple.Writer, "Stored secrets (%d total)\n", len(paths))
	for _, path := range paths {
		_, _ = fmt.Fprintf(tuple.Writer, "  %s\n", path)
	}
	return nil
}
