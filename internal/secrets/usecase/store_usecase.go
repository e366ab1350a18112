package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"filippo.io/age"
	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	customValidation "github.com/sindri-dev/secrets/internal/validation"
)

// storeUseCase implements StoreUseCase over the S3 record repository.
type storeUseCase struct {
	repo     RecordRepository
	envelope cryptoService.EnvelopeService
	cache    SecretCache
	keys     MasterKeyLoader
	fetcher  SecretFetcher
	logger   *slog.Logger
}

// Push encrypts input.Value for the master key and any extra recipients and uploads it.
func (s *storeUseCase) Push(ctx context.Context, input secretsDomain.PushInput) (string, error) {
	defer cryptoDomain.Zero(input.Value)

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&input.S3Path, validation.Required, customValidation.NoWhitespace,
			customValidation.NoTraversal),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", secretsDomain.ErrConfig, err)
	}

	if !input.Force {
		exists, err := s.repo.Exists(ctx, input.S3Path)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: %s (use force to overwrite)", secretsDomain.ErrSecretExists, input.S3Path)
		}
	}

	key, err := s.keys.Load(ctx)
	if err != nil {
		return "", err
	}

	recipients := []age.Recipient{key.Recipient()}
	for _, publicKey := range input.Recipients {
		if publicKey == key.PublicKey() {
			continue
		}
		recipient, err := cryptoDomain.ParseRecipient(publicKey)
		if err != nil {
			return "", err
		}
		recipients = append(recipients, recipient)
	}

	record, err := s.envelope.Encrypt(input.Name, input.Value, recipients)
	if err != nil {
		return "", err
	}
	record.Metadata.Description = input.Description
	record.Metadata.Tags = input.Tags

	versionID, err := s.repo.Put(ctx, input.S3Path, record)
	if err != nil {
		return "", err
	}

	s.invalidate(input.S3Path)
	if err := s.cache.Set(input.S3Path, input.Value, versionID); err != nil {
		s.logger.Warn("failed to cache pushed secret", slog.String("s3_path", input.S3Path), slog.Any("error", err))
	}

	s.logger.Info("secret pushed",
		slog.String("s3_path", input.S3Path),
		slog.String("version_id", versionID),
		slog.Int("recipients", len(recipients)),
	)
	return versionID, nil
}

// Pull resolves the secret at path, preferring the cache.
func (s *storeUseCase) Pull(ctx context.Context, path string) (*secretsDomain.SecretValue, error) {
	return s.fetcher.Fetch(ctx, path)
}

// List returns the stored secret paths, filtered by a doublestar glob when pattern is set.
func (s *storeUseCase) List(ctx context.Context, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid filter pattern %q", secretsDomain.ErrConfig, pattern)
	}

	paths, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return paths, nil
	}

	filtered := []string{}
	for _, path := range paths {
		if ok, _ := doublestar.Match(pattern, path); ok {
			filtered = append(filtered, path)
		}
	}
	return filtered, nil
}

// Delete removes the secret remotely and from the cache.
func (s *storeUseCase) Delete(ctx context.Context, path string) error {
	if err := s.repo.Delete(ctx, path); err != nil {
		return err
	}
	s.invalidate(path)
	s.logger.Info("secret deleted", slog.String("s3_path", path))
	return nil
}

// History returns the stored versions of path, newest first.
func (s *storeUseCase) History(ctx context.Context, path string) ([]secretsDomain.SecretVersion, error) {
	return s.repo.History(ctx, path)
}

// Rollback restores versionID as the newest version of path.
func (s *storeUseCase) Rollback(ctx context.Context, path, versionID string) (string, error) {
	newVersionID, err := s.repo.Rollback(ctx, path, versionID)
	if err != nil {
		return "", err
	}
	s.invalidate(path)
	s.logger.Info("secret rolled back",
		slog.String("s3_path", path),
		slog.String("restored_version_id", versionID),
		slog.String("version_id", newVersionID),
	)
	return newVersionID, nil
}

// SyncStatus classifies local and remote secrets by comparing cached and remote versions.
func (s *storeUseCase) SyncStatus(
	ctx context.Context,
	locals []secretsDomain.LocalSecret,
) (*secretsDomain.SyncResult, error) {
	result, _, err := s.status(ctx, locals)
	return result, err
}

func (s *storeUseCase) status(
	ctx context.Context,
	locals []secretsDomain.LocalSecret,
) (*secretsDomain.SyncResult, []string, error) {
	remotePaths, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	remote := make(map[string]struct{}, len(remotePaths))
	for _, path := range remotePaths {
		remote[path] = struct{}{}
	}

	result := newSyncResult()
	local := make(map[string]struct{}, len(locals))
	for _, secret := range locals {
		if _, seen := local[secret.S3Path]; seen {
			continue
		}
		local[secret.S3Path] = struct{}{}

		if _, ok := remote[secret.S3Path]; !ok {
			// A declared secret without a local value has nothing to push.
			if secret.Value != nil {
				result.ToPush = append(result.ToPush, secret.S3Path)
			}
			continue
		}

		entry, ok := s.cache.Entry(secret.S3Path)
		if !ok {
			result.ToPull = append(result.ToPull, secret.S3Path)
			continue
		}

		head, err := s.repo.Head(ctx, secret.S3Path)
		if err != nil {
			return nil, nil, err
		}
		if entry.VersionID != "" && entry.VersionID == head {
			result.InSync = append(result.InSync, secret.S3Path)
		} else {
			result.Conflicts = append(result.Conflicts, secret.S3Path)
		}
	}

	remoteOnly := []string{}
	for _, path := range remotePaths {
		if _, ok := local[path]; !ok {
			result.ToPull = append(result.ToPull, path)
			remoteOnly = append(remoteOnly, path)
		}
	}

	sort.Strings(result.ToPush)
	sort.Strings(result.ToPull)
	sort.Strings(result.InSync)
	sort.Strings(result.Conflicts)
	return result, remoteOnly, nil
}

// Sync pushes local-only secrets and pulls remote secrets into the cache according to
// input.Direction. Conflicts are reported and never overwritten.
func (s *storeUseCase) Sync(
	ctx context.Context,
	input secretsDomain.SyncInput,
) (*secretsDomain.SyncResult, error) {
	direction := input.Direction
	if direction == "" {
		direction = secretsDomain.SyncBoth
	}

	result, remoteOnly, err := s.status(ctx, input.Locals)
	if err != nil {
		return nil, err
	}
	if input.DryRun {
		return result, nil
	}

	if direction == secretsDomain.SyncPush || direction == secretsDomain.SyncBoth {
		byPath := make(map[string]secretsDomain.LocalSecret, len(input.Locals))
		for _, secret := range input.Locals {
			byPath[secret.S3Path] = secret
		}
		for _, path := range result.ToPush {
			s.syncPush(ctx, byPath[path], result)
		}
	}

	if direction == secretsDomain.SyncPull || direction == secretsDomain.SyncBoth {
		for _, path := range result.ToPull {
			value, err := s.fetcher.Fetch(ctx, path)
			if err != nil {
				result.Failed = append(result.Failed, secretsDomain.SyncFailure{Path: path, Reason: err.Error()})
				continue
			}
			value.Destroy()
			result.Pulled = append(result.Pulled, path)
		}
	}

	if input.DeleteRemote && direction == secretsDomain.SyncPush {
		for _, path := range remoteOnly {
			if err := s.Delete(ctx, path); err != nil {
				result.Failed = append(result.Failed, secretsDomain.SyncFailure{Path: path, Reason: err.Error()})
				continue
			}
			result.Deleted = append(result.Deleted, path)
		}
	}

	s.logger.Info("sync completed",
		slog.String("direction", string(direction)),
		slog.Int("pushed", len(result.Pushed)),
		slog.Int("pulled", len(result.Pulled)),
		slog.Int("deleted", len(result.Deleted)),
		slog.Int("conflicts", len(result.Conflicts)),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *storeUseCase) syncPush(ctx context.Context, secret secretsDomain.LocalSecret, result *secretsDomain.SyncResult) {
	if secret.Value == nil || secret.Value.File() != nil {
		result.Failed = append(result.Failed, secretsDomain.SyncFailure{
			Path:   secret.S3Path,
			Reason: "no local value to push",
		})
		return
	}

	value := make([]byte, secret.Value.Len())
	copy(value, secret.Value.Bytes())

	_, err := s.Push(ctx, secretsDomain.PushInput{
		Name:   secret.Name,
		S3Path: secret.S3Path,
		Value:  value,
	})
	if err != nil {
		result.Failed = append(result.Failed, secretsDomain.SyncFailure{Path: secret.S3Path, Reason: err.Error()})
		return
	}
	result.Pushed = append(result.Pushed, secret.S3Path)
}

func (s *storeUseCase) invalidate(path string) {
	if err := s.cache.Invalidate(path); err != nil {
		s.logger.Warn("failed to invalidate cache entry", slog.String("s3_path", path), slog.Any("error", err))
	}
}

func newSyncResult() *secretsDomain.SyncResult {
	return &secretsDomain.SyncResult{
		ToPush:    []string{},
		ToPull:    []string{},
		InSync:    []string{},
		Conflicts: []string{},
		Pushed:    []string{},
		Pulled:    []string{},
		Deleted:   []string{},
		Failed:    []secretsDomain.SyncFailure{},
	}
}

// NewStoreUseCase creates a StoreUseCase.
func NewStoreUseCase(
	repo RecordRepository,
	envelope cryptoService.EnvelopeService,
	cache SecretCache,
	keys MasterKeyLoader,
	fetcher SecretFetcher,
	logger *slog.Logger,
) StoreUseCase {
	return &storeUseCase{
		repo:     repo,
		envelope: envelope,
		cache:    cache,
		keys:     keys,
		fetcher:  fetcher,
		logger:   logger,
	}
}
