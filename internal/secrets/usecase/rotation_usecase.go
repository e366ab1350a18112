package usecase

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"filippo.io/age"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// RotationLockFile is the advisory lock file name created in the cache directory.
const RotationLockFile = ".rotation.lock"

// rotationUseCase implements RotationUseCase.
//
// Records move to the new key in two phases. Every record is first wrapped for both
// keys. Only after the new key has decrypted a record from storage are records
// re-encrypted for the new key alone, so a failure at any point leaves every record
// readable by the old key or by both.
type rotationUseCase struct {
	repo     RecordRepository
	envelope cryptoService.EnvelopeService
	cache    SecretCache
	lockPath string
	logger   *slog.Logger
}

// AddRecipient wraps every record for recipient in addition to its current recipients.
func (r *rotationUseCase) AddRecipient(
	ctx context.Context,
	oldKey *cryptoDomain.MasterKey,
	recipient string,
	verifyWith *cryptoDomain.MasterKey,
) (*secretsDomain.RotationResult, error) {
	if oldKey == nil {
		return nil, fmt.Errorf("%w: current master key is required", secretsDomain.ErrConfig)
	}
	newRecipient, err := cryptoDomain.ParseRecipient(recipient)
	if err != nil {
		return nil, err
	}

	unlock, err := r.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	paths, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := secretsDomain.NewRotationResult(secretsDomain.KeyStateDualActive)
	r.addPhase(ctx, paths, oldKey.Identity(), recipient, newRecipient, true, result)
	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d secrets could not be re-wrapped",
			secretsDomain.ErrRotationIncomplete, len(result.Failed), len(paths))
	}

	if verifyWith != nil && len(result.Rotated) > 0 {
		if err := r.verify(ctx, result.Rotated[0], verifyWith); err != nil {
			return result, err
		}
	}

	r.logger.Info("recipient added to secrets",
		slog.String("recipient", recipient),
		slog.Int("count", len(result.Rotated)),
	)
	return result, nil
}

// Rotate moves every record from oldKey to newKey.
func (r *rotationUseCase) Rotate(
	ctx context.Context,
	oldKey, newKey *cryptoDomain.MasterKey,
) (*secretsDomain.RotationResult, error) {
	if oldKey == nil || newKey == nil {
		return nil, fmt.Errorf("%w: both the current and the new master key are required", secretsDomain.ErrConfig)
	}
	if oldKey.PublicKey() == newKey.PublicKey() {
		return nil, fmt.Errorf("%w: new master key must differ from the current key", secretsDomain.ErrConfig)
	}

	unlock, err := r.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	paths, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := secretsDomain.NewRotationResult(secretsDomain.KeyStateDualActive)
	if len(paths) == 0 {
		result.State = secretsDomain.KeyStateActive
		result.ActiveKey = newKey.PublicKey()
		return result, nil
	}

	// Phase one: readable by both keys.
	r.addPhase(ctx, paths, oldKey.Identity(), newKey.PublicKey(), newKey.Recipient(), false, result)
	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d secrets could not be wrapped for the new key",
			secretsDomain.ErrRotationIncomplete, len(result.Failed), len(paths))
	}
	if err := r.verify(ctx, paths[0], newKey); err != nil {
		return result, err
	}

	// Phase two: fresh DEK for the new key only.
	result.Rotated = []string{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result.Failed[path] = err
			continue
		}
		if err := r.reencrypt(ctx, path, newKey); err != nil {
			r.logger.Error("failed to re-encrypt secret", slog.String("s3_path", path), slog.Any("error", err))
			result.Failed[path] = err
			continue
		}
		result.Rotated = append(result.Rotated, path)
	}
	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d secrets are still readable by both keys",
			secretsDomain.ErrRotationIncomplete, len(result.Failed), len(paths))
	}

	if err := r.verify(ctx, result.Rotated[0], newKey); err != nil {
		return result, err
	}

	result.State = secretsDomain.KeyStateActive
	result.ActiveKey = newKey.PublicKey()
	r.logger.Info("master key rotated",
		slog.String("public_key", newKey.PublicKey()),
		slog.Int("count", len(result.Rotated)),
	)
	return result, nil
}

// addPhase re-wraps every record for its current recipients plus newRecipient.
// Records already wrapped for the recipient are left untouched.
func (r *rotationUseCase) addPhase(
	ctx context.Context,
	paths []string,
	identity age.Identity,
	publicKey string,
	newRecipient age.Recipient,
	countRotation bool,
	result *secretsDomain.RotationResult,
) {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result.Failed[path] = err
			continue
		}
		if err := r.addRecipient(ctx, path, identity, publicKey, newRecipient, countRotation); err != nil {
			r.logger.Error("failed to add recipient", slog.String("s3_path", path), slog.Any("error", err))
			result.Failed[path] = err
			continue
		}
		result.Rotated = append(result.Rotated, path)
	}
}

func (r *rotationUseCase) addRecipient(
	ctx context.Context,
	path string,
	identity age.Identity,
	publicKey string,
	newRecipient age.Recipient,
	countRotation bool,
) error {
	record, _, err := r.repo.Get(ctx, path)
	if err != nil {
		return err
	}
	if record.HasRecipient(publicKey) {
		return nil
	}

	recipients, err := cryptoService.RecordRecipients(record)
	if err != nil {
		return err
	}

	rewrapped, err := r.envelope.Rewrap(record, identity, append(recipients, newRecipient))
	if err != nil {
		return err
	}
	if countRotation {
		rewrapped.Metadata.RotationCount++
		rewrapped.Metadata.LastRotatedBy = publicKey
	}

	if _, err := r.repo.Put(ctx, path, rewrapped); err != nil {
		return err
	}
	r.invalidate(path)
	return nil
}

func (r *rotationUseCase) reencrypt(ctx context.Context, path string, newKey *cryptoDomain.MasterKey) error {
	record, _, err := r.repo.Get(ctx, path)
	if err != nil {
		return err
	}

	plaintext, err := r.envelope.Decrypt(record, newKey.Identity())
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(plaintext)

	fresh, err := r.envelope.Encrypt(record.SecretName, plaintext, []age.Recipient{newKey.Recipient()})
	if err != nil {
		return err
	}
	fresh.CreatedAt = record.CreatedAt
	fresh.Metadata = record.Metadata
	fresh.Metadata.RotationCount++
	fresh.Metadata.LastRotatedBy = newKey.PublicKey()

	if _, err := r.repo.Put(ctx, path, fresh); err != nil {
		return err
	}
	r.invalidate(path)
	return nil
}

// verify decrypts the stored record at path with key.
func (r *rotationUseCase) verify(ctx context.Context, path string, key *cryptoDomain.MasterKey) error {
	record, _, err := r.repo.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", secretsDomain.ErrRotationValidationFailed, path, err)
	}
	plaintext, err := r.envelope.Decrypt(record, key.Identity())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", secretsDomain.ErrRotationValidationFailed, path, err)
	}
	cryptoDomain.Zero(plaintext)
	return nil
}

// lock takes the advisory rotation lock. Only concurrent rotations are excluded.
func (r *rotationUseCase) lock() (func(), error) {
	if r.lockPath == "" {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(r.lockPath), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create lock directory")
	}

	//nolint:gosec // lock path is derived from the configured cache directory
	file, err := os.OpenFile(r.lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: remove %s if no rotation is running", secretsDomain.ErrRotationInProgress, r.lockPath)
		}
		return nil, errors.Wrap(err, "failed to create rotation lock")
	}
	_, _ = fmt.Fprintf(file, "%d\n", os.Getpid())
	_ = file.Close()

	return func() {
		if err := os.Remove(r.lockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("failed to release rotation lock", slog.String("path", r.lockPath), slog.Any("error", err))
		}
	}, nil
}

func (r *rotationUseCase) invalidate(path string) {
	if err := r.cache.Invalidate(path); err != nil {
		r.logger.Warn("failed to invalidate cache entry", slog.String("s3_path", path), slog.Any("error", err))
	}
}

// NewRotationUseCase creates a RotationUseCase. An empty lockDir disables the advisory lock.
func NewRotationUseCase(
	repo RecordRepository,
	envelope cryptoService.EnvelopeService,
	cache SecretCache,
	lockDir string,
	logger *slog.Logger,
) RotationUseCase {
	lockPath := ""
	if lockDir != "" {
		lockPath = filepath.Join(lockDir, RotationLockFile)
	}
	return &rotationUseCase{
		repo:     repo,
		envelope: envelope,
		cache:    cache,
		lockPath: lockPath,
		logger:   logger,
	}
}
