package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"filippo.io/age"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// RecordGetter downloads encrypted records.
type RecordGetter interface {
	Get(ctx context.Context, path string) (*cryptoDomain.EncryptedSecretRecord, string, error)
}

// RecordDecrypter opens encrypted records.
type RecordDecrypter interface {
	Decrypt(record *cryptoDomain.EncryptedSecretRecord, identity age.Identity) ([]byte, error)
}

// PlaintextCache caches decrypted values by S3 path.
type PlaintextCache interface {
	Get(path string) ([]byte, bool)
	Set(path string, plaintext []byte, versionID string) error
}

// MasterKeyLoader loads the master key used to unwrap record DEKs.
type MasterKeyLoader interface {
	Load(ctx context.Context) (*cryptoDomain.MasterKey, error)
}

// S3Source resolves envelope-encrypted secrets from S3, preferring the local cache.
type S3Source struct {
	records  RecordGetter
	envelope RecordDecrypter
	cache    PlaintextCache
	keys     MasterKeyLoader
	logger   *slog.Logger

	keyMu sync.Mutex
	key   *cryptoDomain.MasterKey
}

// NewS3Source creates an S3Source. The master key is loaded on first use.
func NewS3Source(
	records RecordGetter,
	envelope RecordDecrypter,
	cache PlaintextCache,
	keys MasterKeyLoader,
	logger *slog.Logger,
) *S3Source {
	return &S3Source{
		records:  records,
		envelope: envelope,
		cache:    cache,
		keys:     keys,
		logger:   logger,
	}
}

// Resolve returns the cached plaintext for descriptor.S3Path when fresh, otherwise
// downloads, decrypts and caches the record.
func (s *S3Source) Resolve(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	_ secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	if descriptor.S3Path == "" {
		return nil, fmt.Errorf("%w: secret %q requires s3Path", secretsDomain.ErrConfig, descriptor.Name)
	}
	return s.Fetch(ctx, descriptor.S3Path)
}

// Fetch resolves the value stored at path.
func (s *S3Source) Fetch(ctx context.Context, path string) (*secretsDomain.SecretValue, error) {
	if plaintext, ok := s.cache.Get(path); ok {
		return secretsDomain.NewSecretValue(plaintext, secretsDomain.FromS3Cache), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
	}

	key, err := s.masterKey(ctx)
	if err != nil {
		return nil, err
	}

	record, versionID, err := s.records.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.envelope.Decrypt(record, key.Identity())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(path, plaintext, versionID); err != nil {
		s.logger.Warn("failed to cache secret",
			slog.String("s3_path", path),
			slog.Any("error", err),
		)
	}

	return secretsDomain.NewSecretValue(plaintext, secretsDomain.FromS3), nil
}

func (s *S3Source) masterKey(ctx context.Context) (*cryptoDomain.MasterKey, error) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()

	if s.key != nil {
		return s.key, nil
	}
	key, err := s.keys.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.key = key
	return key, nil
}
