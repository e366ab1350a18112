package commands

import (
	"context"
	"fmt"
	"log/slog"

	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
)

// RunKeygen generates an age master key file with mode 0600. An existing file is kept
// unless force is set. With keyring set the key is also stored in the OS keyring.
func RunKeygen(
	ctx context.Context,
	keys cryptoService.MasterKeyStore,
	logger *slog.Logger,
	tuple IOTuple,
	output string,
	force bool,
	keyring bool,
) error {
	if output == "" {
		return fmt.Errorf("--output is required")
	}

	key, err := keys.Generate(ctx, output, force)
	if err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}

	logger.Info("master key generated", slog.String("path", output), slog.String("public_key", key.PublicKey()))

	if keyring {
		if err := keys.StoreInKeyring(key); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(tuple.Writer, "Master key stored in the OS keyring")
	}

	_, _ = fmt.Fprintf(tuple.Writer, "Master key generated: %s\n", output)
	_, _ = fmt.Fprintf(tuple.Writer, "Public key: %s\n", key.PublicKey())
	_, _ = fmt.Fprintln(tuple.Writer)
	_, _ = fmt.Fprintln(tuple.errWriter(), "WARNING: keep this key secure and backed up")
	_, _ = fmt.Fprintln(tuple.Writer, "Add it to .gitignore to keep it out of version control:")
	_, _ = fmt.Fprintf(tuple.Writer, "  echo '%s' >> .gitignore\n", output)
	return nil
}
