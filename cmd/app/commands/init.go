package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
)

// BucketInitializer checks and optionally creates the secrets bucket.
type BucketInitializer interface {
	EnsureBucket(ctx context.Context, create bool) error
	Bucket() string
}

// InitOptions holds the flags of the init command.
type InitOptions struct {
	Region       string
	Endpoint     string
	KeyFile      string
	CreateBucket bool
	Output       string
}

// RunInit prepares S3 encrypted storage. It ensures the bucket exists with versioning,
// loads or generates the master key file and prints the matching .env settings, or writes
// them to opts.Output.
func RunInit(
	ctx context.Context,
	bucket BucketInitializer,
	keys cryptoService.MasterKeyStore,
	logger *slog.Logger,
	writer IOTuple,
	opts InitOptions,
) error {
	if opts.KeyFile == "" {
		return fmt.Errorf("--key-file is required")
	}

	logger.Info("initializing s3 storage",
		slog.String("bucket", bucket.Bucket()),
		slog.Bool("create_bucket", opts.CreateBucket),
	)

	if err := bucket.EnsureBucket(ctx, opts.CreateBucket); err != nil {
		return fmt.Errorf("failed to prepare bucket %s: %w", bucket.Bucket(), err)
	}
	_, _ = fmt.Fprintf(writer.Writer, "Bucket %s is ready (versioning enabled)\n", bucket.Bucket())

	key, err := keys.LoadFile(ctx, opts.KeyFile)
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(writer.Writer, "Using existing master key %s\n", opts.KeyFile)
	case errors.Is(err, cryptoDomain.ErrMasterKeyNotFound):
		key, err = keys.Generate(ctx, opts.KeyFile, false)
		if err != nil {
			return fmt.Errorf("failed to generate master key: %w", err)
		}
		_, _ = fmt.Fprintf(writer.Writer, "Master key saved to %s\n", opts.KeyFile)
		_, _ = fmt.Fprintln(writer.errWriter(), "WARNING: keep this key secure and backed up, and add it to .gitignore")
	default:
		return fmt.Errorf("failed to load master key: %w", err)
	}

	snippet := envSnippet(bucket.Bucket(), opts)
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(snippet), 0o600); err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}
		_, _ = fmt.Fprintf(writer.Writer, "Configuration written to %s\n", opts.Output)
	} else {
		_, _ = fmt.Fprintln(writer.Writer)
		_, _ = fmt.Fprint(writer.Writer, snippet)
	}

	_, _ = fmt.Fprintln(writer.Writer)
	_, _ = fmt.Fprintf(writer.Writer, "Master key public key: %s\n", key.PublicKey())

	logger.Info("s3 storage initialized", slog.String("bucket", bucket.Bucket()))
	return nil
}

func envSnippet(bucket string, opts InitOptions) string {
	var b strings.Builder
	b.WriteString("# Sindri secrets S3 backend\n")
	fmt.Fprintf(&b, "S3_BUCKET=%q\n", bucket)
	if opts.Region != "" {
		fmt.Fprintf(&b, "S3_REGION=%q\n", opts.Region)
	}
	if opts.Endpoint != "" {
		fmt.Fprintf(&b, "S3_ENDPOINT=%q\n", opts.Endpoint)
		b.WriteString("S3_FORCE_PATH_STYLE=\"true\"\n")
	}
	fmt.Fprintf(&b, "MASTER_KEY_FILE=%q\n", opts.KeyFile)
	return b.String()
}
