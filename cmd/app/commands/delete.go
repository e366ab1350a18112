package commands

import (
	"context"
	"fmt"
	"log/slog"

	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// RunDelete deletes a stored secret after confirmation, or immediately with yes set.
func RunDelete(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	name string,
	s3Path string,
	yes bool,
) error {
	path := secretPath(name, s3Path)

	if !yes && !confirm(tuple, fmt.Sprintf("Delete secret %s?", path)) {
		_, _ = fmt.Fprintln(tuple.Writer, "Delete cancelled")
		return nil
	}

	if err := storeUseCase.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	logger.Info("secret deleted", slog.String("s3_path", path))
	_, _ = fmt.Fprintf(tuple.Writer, "Secret '%s' deleted\n", name)
	return nil
}
