package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// PushOptions holds the flags of the push command.
type PushOptions struct {
	Value       string
	FromFile    string
	Stdin       bool
	S3Path      string
	Force       bool
	Recipients  []string
	Description string
}

// RunPush encrypts a secret value and uploads it to S3. The value comes from stdin,
// --value or --from-file, in that order. Surrounding whitespace is trimmed.
func RunPush(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	name string,
	opts PushOptions,
) error {
	value, err := readPushValue(tuple.Reader, opts)
	if err != nil {
		return err
	}
	size := len(value)

	path := secretPath(name, opts.S3Path)
	logger.Info("pushing secret", slog.String("name", name), slog.String("s3_path", path))

	versionID, err := storeUseCase.Push(ctx, secretsDomain.PushInput{
		Name:        name,
		S3Path:      path,
		Value:       value,
		Recipients:  opts.Recipients,
		Force:       opts.Force,
		Description: opts.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to push secret: %w", err)
	}

	_, _ = fmt.Fprintf(tuple.Writer, "Secret '%s' pushed to %s (%d bytes, version %s)\n", name, path, size, versionID)
	return nil
}

func readPushValue(reader io.Reader, opts PushOptions) ([]byte, error) {
	var raw []byte
	switch {
	case opts.Stdin:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = data
	case opts.Value != "":
		raw = []byte(opts.Value)
	case opts.FromFile != "":
		data, err := os.ReadFile(opts.FromFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", opts.FromFile, err)
		}
		raw = data
	default:
		return nil, fmt.Errorf("a value is required: use --value, --from-file or --stdin")
	}

	value := bytes.TrimSpace(raw)
	if len(value) == 0 {
		return nil, fmt.Errorf("secret value cannot be empty")
	}
	return value, nil
}
