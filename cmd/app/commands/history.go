package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// RunHistory prints the stored versions of a secret, newest first.
func RunHistory(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	name string,
	s3Path string,
) error {
	path := secretPath(name, s3Path)

	versions, err := storeUseCase.History(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	logger.Debug("history read", slog.String("s3_path", path), slog.Int("versions", len(versions)))

	_, _ = fmt.Fprintf(tuple.Writer, "History of %s (%d version(s))\n", path, len(versions))
	for _, version := range versions {
		marker := " "
		if version.IsLatest {
			marker = "*"
		}
		_, _ = fmt.Fprintf(tuple.Writer, "%s %s  %s  %d bytes\n",
			marker,
			version.VersionID,
			version.LastModified.UTC().Format(time.RFC3339),
			version.Size,
		)
	}
	return nil
}

// RunRollback restores a previous version of a secret as its newest version.
func RunRollback(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	name string,
	s3Path string,
	versionID string,
) error {
	if versionID == "" {
		return fmt.Errorf("--version is required")
	}
	path := secretPath(name, s3Path)

	newVersionID, err := storeUseCase.Rollback(ctx, path, versionID)
	if err != nil {
		return fmt.Errorf("failed to roll back secret: %w", err)
	}

	logger.Info("rollback finished", slog.String("s3_path", path), slog.String("version_id", newVersionID))
	_, _ = fmt.Fprintf(tuple.Writer, "Secret '%s' restored from version %s (new version %s)\n", name, versionID, newVersionID)
	return nil
}
