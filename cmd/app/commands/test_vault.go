package commands

import (
	"context"
	"fmt"
	"log/slog"
)

// VaultHealthChecker reports whether Vault is reachable.
type VaultHealthChecker interface {
	Health(ctx context.Context) error
}

// RunTestVault checks Vault connectivity with the configured client.
func RunTestVault(
	ctx context.Context,
	client VaultHealthChecker,
	logger *slog.Logger,
	tuple IOTuple,
	address string,
	method string,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	healthErr := client.Health(ctx)
	if healthErr != nil {
		logger.Error("vault health check failed", slog.String("address", address), slog.Any("error", healthErr))
	}

	if format == FormatJSON {
		status := "ok"
		if healthErr != nil {
			status = "error"
		}
		if err := writeJSON(tuple.Writer, map[string]any{
			"status":      status,
			"address":     address,
			"auth_method": method,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(tuple.Writer, "Address: %s\n", address)
		_, _ = fmt.Fprintf(tuple.Writer, "Auth method: %s\n", method)
	}

	if healthErr != nil {
		return fmt.Errorf("vault connection failed: %w", healthErr)
	}
	if format == FormatText {
		_, _ = fmt.Fprintln(tuple.Writer, "Vault connection successful")
	}
	return nil
}
