package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// PullOptions holds the flags of the pull command.
type PullOptions struct {
	S3Path string
	Output string
	Export bool
	Show   bool
}

// RunPull downloads and decrypts a secret. Without --output or --show only the size is
// reported. --export formats the value as a shell export line for either destination.
// --show is the only way to print a plaintext value, and it warns on the error writer.
func RunPull(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	name string,
	opts PullOptions,
) error {
	path := secretPath(name, opts.S3Path)

	value, err := storeUseCase.Pull(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to pull secret: %w", err)
	}
	defer value.Destroy()

	logger.Info("secret pulled",
		slog.String("name", name),
		slog.String("s3_path", path),
		slog.String("resolved_from", string(value.ResolvedFrom())),
	)

	content := value.Bytes()
	if opts.Export {
		content = []byte(exportLine(name, string(content)) + "\n")
	}

	switch {
	case opts.Output != "":
		if err := os.WriteFile(opts.Output, content, 0o600); err != nil {
			return fmt.Errorf("failed to write secret: %w", err)
		}
		_, _ = fmt.Fprintf(tuple.Writer, "Secret written to %s\n", opts.Output)
	case opts.Show:
		_, _ = fmt.Fprintln(tuple.errWriter(), "WARNING: printing a plaintext secret value")
		_, _ = fmt.Fprintln(tuple.Writer, strings.TrimSuffix(string(content), "\n"))
	default:
		_, _ = fmt.Fprintf(tuple.Writer, "Secret '%s' pulled successfully (%d bytes, from %s)\n",
			name, value.Len(), value.ResolvedFrom())
		_, _ = fmt.Fprintln(tuple.Writer, "Use --show to display the value or --output to save it to a file")
	}

	return nil
}

// exportLine returns a POSIX shell export statement with the value single-quoted.
func exportLine(name, value string) string {
	return fmt.Sprintf("export %s='%s'", name, strings.ReplaceAll(value, "'", `'\''`))
}
