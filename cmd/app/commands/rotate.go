package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// RotateOptions holds the flags of the rotate command.
type RotateOptions struct {
	NewKey  string
	OldKey  string
	AddOnly bool
	Yes     bool
}

// RunRotate rotates every stored secret to the master key in opts.NewKey.
// The old key is read from opts.OldKey, or from the configured master key when unset.
// With AddOnly the new key is added as a recipient and both keys stay valid.
func RunRotate(
	ctx context.Context,
	rotationUseCase secretsUseCase.RotationUseCase,
	keys cryptoService.MasterKeyStore,
	logger *slog.Logger,
	tuple IOTuple,
	opts RotateOptions,
) error {
	if opts.NewKey == "" {
		return fmt.Errorf("--new-key is required")
	}

	newKey, err := keys.LoadFile(ctx, opts.NewKey)
	if err != nil {
		return fmt.Errorf("failed to load new key: %w", err)
	}

	var oldKey *cryptoDomain.MasterKey
	if opts.OldKey != "" {
		oldKey, err = keys.LoadFile(ctx, opts.OldKey)
	} else {
		oldKey, err = keys.Load(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load old key: %w", err)
	}

	mode := "full rotation (re-encrypt all secrets)"
	if opts.AddOnly {
		mode = "add new key only (dual-key support)"
	}
	_, _ = fmt.Fprintf(tuple.Writer, "Old key: %s\n", oldKey.PublicKey())
	_, _ = fmt.Fprintf(tuple.Writer, "New key: %s\n", newKey.PublicKey())
	_, _ = fmt.Fprintf(tuple.Writer, "Mode: %s\n", mode)

	if !opts.Yes && !confirm(tuple, "Rotate master key?") {
		_, _ = fmt.Fprintln(tuple.Writer, "Key rotation cancelled")
		return nil
	}

	var result *secretsDomain.RotationResult
	if opts.AddOnly {
		result, err = rotationUseCase.AddRecipient(ctx, oldKey, newKey.PublicKey(), newKey)
	} else {
		result, err = rotationUseCase.Rotate(ctx, oldKey, newKey)
	}
	if result != nil {
		printRotationResult(tuple, result)
	}
	if err != nil {
		return fmt.Errorf("failed to rotate master key: %w", err)
	}

	logger.Info("master key rotated",
		slog.String("state", string(result.State)),
		slog.Int("rotated", len(result.Rotated)),
	)

	if !opts.AddOnly {
		_, _ = fmt.Fprintln(tuple.Writer)
		_, _ = fmt.Fprintf(tuple.Writer, "Point MASTER_KEY_FILE at %s.\n", opts.NewKey)
		if opts.OldKey != "" {
			_, _ = fmt.Fprintln(tuple.Writer, "The old key is no longer needed. Secure deletion recommended:")
			_, _ = fmt.Fprintf(tuple.Writer, "  shred -u %s\n", opts.OldKey)
		}
	}
	return nil
}

func printRotationResult(tuple IOTuple, result *secretsDomain.RotationResult) {
	_, _ = fmt.Fprintf(tuple.Writer, "State: %s\n", result.State)
	_, _ = fmt.Fprintf(tuple.Writer, "Rotated %d secret(s)\n", len(result.Rotated))

	failed := make([]string, 0, len(result.Failed))
	for path := range result.Failed {
		failed = append(failed, path)
	}
	sort.Strings(failed)
	for _, path := range failed {
		_, _ = fmt.Fprintf(tuple.errWriter(), "FAILED %s: %v\n", path, result.Failed[path])
	}
}
