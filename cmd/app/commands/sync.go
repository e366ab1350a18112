package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindri-dev/secrets/internal/manifest"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsUseCase "github.com/sindri-dev/secrets/internal/secrets/usecase"
)

// SyncOptions holds the flags of the sync command.
type SyncOptions struct {
	Direction    string
	DryRun       bool
	DeleteRemote bool
}

// RunSync reconciles the S3 secrets of a manifest with the bucket. Local values for
// pushes come from each S3 secret's fallback source. Secrets without a local value are
// still declared so they are classified against the bucket, but they are never pushed
// and never deleted as remote only.
func RunSync(
	ctx context.Context,
	storeUseCase secretsUseCase.StoreUseCase,
	resolver secretsUseCase.ResolverUseCase,
	logger *slog.Logger,
	tuple IOTuple,
	m *manifest.Manifest,
	rctx secretsDomain.ResolutionContext,
	opts SyncOptions,
) error {
	direction, err := secretsDomain.ParseSyncDirection(opts.Direction)
	if err != nil {
		return err
	}

	descriptors := m.Filter(secretsDomain.SourceS3)
	if len(descriptors) == 0 {
		_, _ = fmt.Fprintln(tuple.Writer, "No S3 secrets configured")
		return nil
	}

	var values secretsDomain.Secrets
	if direction != secretsDomain.SyncPull {
		values, err = resolveLocalValues(ctx, resolver, descriptors, rctx)
		if err != nil {
			return err
		}
		defer values.Close()
	}

	locals := make([]secretsDomain.LocalSecret, 0, len(descriptors))
	for _, descriptor := range descriptors {
		locals = append(locals, secretsDomain.LocalSecret{
			Name:   descriptor.Name,
			S3Path: descriptor.S3Path,
			Value:  values[descriptor.Name],
		})
	}

	if opts.DryRun {
		_, _ = fmt.Fprintln(tuple.Writer, "DRY RUN MODE - no changes will be made")
	}

	result, err := storeUseCase.Sync(ctx, secretsDomain.SyncInput{
		Locals:       locals,
		Direction:    direction,
		DryRun:       opts.DryRun,
		DeleteRemote: opts.DeleteRemote,
	})
	if err != nil {
		return fmt.Errorf("failed to sync secrets: %w", err)
	}

	printPaths(tuple, "To push", result.ToPush)
	printPaths(tuple, "To pull", result.ToPull)
	printPaths(tuple, "In sync", result.InSync)
	printPaths(tuple, "Conflicts", result.Conflicts)

	if opts.DryRun {
		_, _ = fmt.Fprintln(tuple.Writer, "Dry run complete. Run without --dry-run to apply changes")
		return nil
	}

	printPaths(tuple, "Pushed", result.Pushed)
	printPaths(tuple, "Pulled", result.Pulled)
	printPaths(tuple, "Deleted", result.Deleted)
	for _, failure := range result.Failed {
		_, _ = fmt.Fprintf(tuple.errWriter(), "FAILED %s: %s\n", failure.Path, failure.Reason)
	}

	logger.Info("sync finished",
		slog.String("direction", string(direction)),
		slog.Int("failed", len(result.Failed)),
	)

	if len(result.Failed) > 0 {
		return fmt.Errorf("sync completed with %d failure(s)", len(result.Failed))
	}
	return nil
}

// resolveLocalValues resolves S3 secrets from their fallback sources. Secrets without
// a fallback, or whose fallback cannot resolve, have no local value.
func resolveLocalValues(
	ctx context.Context,
	resolver secretsUseCase.ResolverUseCase,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (secretsDomain.Secrets, error) {
	local := []secretsDomain.SecretDescriptor{}
	for _, descriptor := range descriptors {
		if descriptor.Fallback == nil {
			continue
		}
		fallback := descriptor.WithSource(*descriptor.Fallback)
		fallback.Required = false
		local = append(local, fallback)
	}
	if len(local) == 0 {
		return secretsDomain.Secrets{}, nil
	}

	rctx.AllowOptionalFailures = true
	values, err := resolver.ResolveAll(ctx, local, rctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local values: %w", err)
	}
	return values, nil
}

func printPaths(tuple IOTuple, label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	_, _ = fmt.Fprintf(tuple.Writer, "%s (%d):\n", label, len(paths))
	for _, path := range paths {
		_, _ = fmt.Fprintf(tuple.Writer, "  %s\n", path)
	}
}
