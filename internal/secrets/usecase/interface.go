// Package usecase defines the interfaces and implementations for secret resolution,
// encrypted storage and master key rotation. Use cases orchestrate sources, the S3
// record repository, the envelope service and the local cache.
package usecase

import (
	"context"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/secrets/cache"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// Source resolves a single descriptor.
type Source interface {
	Resolve(
		ctx context.Context,
		descriptor secretsDomain.SecretDescriptor,
		rctx secretsDomain.ResolutionContext,
	) (*secretsDomain.SecretValue, error)
}

// SecretFetcher resolves a value by S3 path, preferring the cache.
type SecretFetcher interface {
	Fetch(ctx context.Context, path string) (*secretsDomain.SecretValue, error)
}

// RecordRepository defines persistence operations for encrypted secret records.
type RecordRepository interface {
	Put(ctx context.Context, path string, record *cryptoDomain.EncryptedSecretRecord) (string, error)
	Get(ctx context.Context, path string) (*cryptoDomain.EncryptedSecretRecord, string, error)
	GetVersion(ctx context.Context, path, versionID string) (*cryptoDomain.EncryptedSecretRecord, error)
	Head(ctx context.Context, path string) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
	List(ctx context.Context) ([]string, error)
	History(ctx context.Context, path string) ([]secretsDomain.SecretVersion, error)
	Rollback(ctx context.Context, path, versionID string) (string, error)
	Delete(ctx context.Context, path string) error
}

// SecretCache defines the local plaintext cache operations used by the store and rotation.
type SecretCache interface {
	Get(path string) ([]byte, bool)
	Entry(path string) (*cache.Entry, bool)
	Set(path string, plaintext []byte, versionID string) error
	Invalidate(path string) error
}

// MasterKeyLoader loads the active master key.
type MasterKeyLoader interface {
	Load(ctx context.Context) (*cryptoDomain.MasterKey, error)
}

// ResolverUseCase defines the multi-source resolution business logic.
type ResolverUseCase interface {
	// ResolveAll resolves every descriptor concurrently.
	//
	// Security Note: The caller owns the returned values and MUST call Close on the
	// returned Secrets when done.
	ResolveAll(
		ctx context.Context,
		descriptors []secretsDomain.SecretDescriptor,
		rctx secretsDomain.ResolutionContext,
	) (secretsDomain.Secrets, error)
	// Validate runs the resolution chain without retaining any value.
	Validate(
		ctx context.Context,
		descriptors []secretsDomain.SecretDescriptor,
		rctx secretsDomain.ResolutionContext,
	) (*secretsDomain.ValidationReport, error)
}

// StoreUseCase defines encrypted storage operations against S3.
type StoreUseCase interface {
	Push(ctx context.Context, input secretsDomain.PushInput) (string, error)
	// Pull downloads and decrypts a secret.
	//
	// Security Note: The caller MUST call Destroy on the returned value.
	Pull(ctx context.Context, path string) (*secretsDomain.SecretValue, error)
	List(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, path string) error
	History(ctx context.Context, path string) ([]secretsDomain.SecretVersion, error)
	Rollback(ctx context.Context, path, versionID string) (string, error)
	SyncStatus(ctx context.Context, locals []secretsDomain.LocalSecret) (*secretsDomain.SyncResult, error)
	Sync(ctx context.Context, input secretsDomain.SyncInput) (*secretsDomain.SyncResult, error)
}

// RotationUseCase defines master key rotation over every stored record.
type RotationUseCase interface {
	// AddRecipient wraps every record for recipient in addition to its current recipients.
	// When verifyWith is not nil it must decrypt a rotated record for the call to succeed.
	AddRecipient(
		ctx context.Context,
		oldKey *cryptoDomain.MasterKey,
		recipient string,
		verifyWith *cryptoDomain.MasterKey,
	) (*secretsDomain.RotationResult, error)
	// Rotate moves every record from oldKey to newKey.
	Rotate(
		ctx context.Context,
		oldKey, newKey *cryptoDomain.MasterKey,
	) (*secretsDomain.RotationResult, error)
}
