package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

// ageKeyWrapper wraps DEKs with age, producing ASCII-armored output.
type ageKeyWrapper struct{}

// NewAgeKeyWrapper creates a KeyWrapper backed by age X25519 recipients.
func NewAgeKeyWrapper() KeyWrapper {
	return &ageKeyWrapper{}
}

// Wrap encrypts dek in a single age file readable by any of the recipients.
func (w *ageKeyWrapper) Wrap(dek []byte, recipients []age.Recipient) (string, error) {
	if len(recipients) == 0 {
		return "", cryptoDomain.ErrNoRecipients
	}
	if len(dek) != cryptoDomain.DEKSize {
		return "", cryptoDomain.ErrInvalidKeySize
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	ageWriter, err := age.Encrypt(armorWriter, recipients...)
	if err != nil {
		return "", fmt.Errorf("failed to wrap dek: %w", err)
	}
	if _, err := ageWriter.Write(dek); err != nil {
		return "", fmt.Errorf("failed to wrap dek: %w", err)
	}
	if err := ageWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize wrapped dek: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to armor wrapped dek: %w", err)
	}

	return buf.String(), nil
}

// Unwrap decrypts the armored DEK. The returned slice must be zeroed by the caller.
func (w *ageKeyWrapper) Unwrap(armored string, identity age.Identity) ([]byte, error) {
	reader, err := age.Decrypt(armor.NewReader(strings.NewReader(armored)), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}

	dek, err := io.ReadAll(io.LimitReader(reader, cryptoDomain.DEKSize+1))
	if err != nil {
		cryptoDomain.Zero(dek)
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}
	if len(dek) != cryptoDomain.DEKSize {
		cryptoDomain.Zero(dek)
		return nil, fmt.Errorf("%w: unexpected dek length", cryptoDomain.ErrDecryptionFailed)
	}

	return dek, nil
}
