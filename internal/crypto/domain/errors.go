package domain

import (
	"github.com/sindri-dev/secrets/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so callers
// can classify a failure (authentication, permission, input) without depending on
// the crypto package.
var (
	// ErrUnsupportedAlgorithm indicates a record names a cipher other than ChaCha20-Poly1305.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the DEK is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates a record could not be authenticated or decrypted.
	//
	// This error can occur due to:
	//   - Wrong identity used to unwrap the DEK
	//   - Ciphertext, nonce, tag or wrapped DEK have been tampered with
	//   - Corrupted or truncated encoded fields
	//
	// The specific cause is not disclosed. It is an authentication failure and is
	// never retried or downgraded.
	ErrDecryptionFailed = errors.Wrap(errors.ErrUnauthorized, "decryption failed")

	// ErrNoRecipients indicates encryption was requested without any recipient.
	ErrNoRecipients = errors.Wrap(errors.ErrInvalidInput, "at least one recipient is required")

	// ErrInvalidRecipient indicates a recipient string is not a valid age X25519 public key.
	ErrInvalidRecipient = errors.Wrap(errors.ErrInvalidInput, "invalid recipient")

	// ErrInvalidMasterKey indicates master key material could not be parsed.
	ErrInvalidMasterKey = errors.Wrap(errors.ErrInvalidInput, "invalid master key")

	// ErrMasterKeyNotFound indicates no master key is configured in env, keyring or file.
	ErrMasterKeyNotFound = errors.Wrap(errors.ErrNotFound, "master key not found")

	// ErrMasterKeyExists indicates keygen would overwrite an existing key file.
	ErrMasterKeyExists = errors.Wrap(errors.ErrConflict, "master key file already exists")

	// ErrInsecureKeyFile indicates the master key file is readable by group or others.
	ErrInsecureKeyFile = errors.Wrap(errors.ErrForbidden, "master key file permissions must be 0600")

	// ErrInvalidRecord indicates an encrypted record is malformed.
	ErrInvalidRecord = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted secret record")
)
