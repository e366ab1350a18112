// Package service provides the cryptographic services behind encrypted secret storage:
// the ChaCha20-Poly1305 value cipher, age DEK wrapping, the envelope engine and
// master key storage.
package service

import (
	"context"
	"time"

	"filippo.io/age"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext (tag appended) and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// KeyWrapper wraps DEKs for a set of recipients and unwraps them with an identity.
type KeyWrapper interface {
	// Wrap encrypts dek once for all recipients and returns an armored blob.
	Wrap(dek []byte, recipients []age.Recipient) (string, error)

	// Unwrap recovers the DEK. Any failure is ErrDecryptionFailed.
	Unwrap(armored string, identity age.Identity) ([]byte, error)
}

// EnvelopeService encrypts secret values into EncryptedSecretRecords and back.
type EnvelopeService interface {
	// Encrypt encrypts plaintext under a fresh DEK wrapped for every recipient.
	Encrypt(secretName string, plaintext []byte, recipients []age.Recipient) (*cryptoDomain.EncryptedSecretRecord, error)

	// Decrypt unwraps the DEK with identity and authenticates and decrypts the value.
	Decrypt(record *cryptoDomain.EncryptedSecretRecord, identity age.Identity) ([]byte, error)

	// Rewrap re-wraps the existing DEK for a new recipient set without touching the value.
	Rewrap(
		record *cryptoDomain.EncryptedSecretRecord,
		identity age.Identity,
		recipients []age.Recipient,
	) (*cryptoDomain.EncryptedSecretRecord, error)
}

// KMSKeeper seals and unseals small payloads with a KMS key.
// *secrets.Keeper from gocloud.dev satisfies it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// MasterKeyStore generates and loads the master key.
type MasterKeyStore interface {
	// Generate creates a key file at path. Existing files are kept unless force is set.
	Generate(ctx context.Context, path string, force bool) (*cryptoDomain.MasterKey, error)

	// Load returns the configured master key from env, keyring or file.
	Load(ctx context.Context) (*cryptoDomain.MasterKey, error)

	// LoadFile reads a key file, enforcing 0600 permissions.
	LoadFile(ctx context.Context, path string) (*cryptoDomain.MasterKey, error)

	// StoreInKeyring saves the key in the OS keyring.
	StoreInKeyring(key *cryptoDomain.MasterKey) error
}

// Clock returns the current time.
type Clock func() time.Time
