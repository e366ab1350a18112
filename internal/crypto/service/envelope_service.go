package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"filippo.io/age"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

// envelopeService implements EnvelopeService with ChaCha20-Poly1305 and age.
type envelopeService struct {
	wrapper KeyWrapper
	now     Clock
}

// NewEnvelopeService creates the envelope engine. A nil clock defaults to time.Now.
func NewEnvelopeService(wrapper KeyWrapper, now Clock) EnvelopeService {
	if now == nil {
		now = time.Now
	}
	return &envelopeService{wrapper: wrapper, now: now}
}

// Encrypt generates a fresh DEK and nonce, seals plaintext, and wraps the DEK for recipients.
// The DEK only exists in memory for the duration of the call.
func (s *envelopeService) Encrypt(
	secretName string,
	plaintext []byte,
	recipients []age.Recipient,
) (*cryptoDomain.EncryptedSecretRecord, error) {
	if len(recipients) == 0 {
		return nil, cryptoDomain.ErrNoRecipients
	}

	recipientKeys, err := recipientStrings(recipients)
	if err != nil {
		return nil, err
	}

	dek := make([]byte, cryptoDomain.DEKSize)
	defer cryptoDomain.Zero(dek)
	if _, err := rand.Read(dek); err != nil {
		return nil, fmt.Errorf("failed to generate dek: %w", err)
	}

	cipher, err := NewChaCha20Poly1305(dek)
	if err != nil {
		return nil, err
	}

	sealed, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt secret value: %w", err)
	}
	ciphertext, tag := splitTag(sealed)

	wrapped, err := s.wrapper.Wrap(dek, recipients)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return &cryptoDomain.EncryptedSecretRecord{
		Version:    cryptoDomain.RecordVersion,
		SecretName: secretName,
		CreatedAt:  now,
		UpdatedAt:  now,
		Encryption: cryptoDomain.EncryptionInfo{
			Algorithm:     cryptoDomain.ChaCha20Poly1305,
			KeyDerivation: cryptoDomain.AgeX25519,
			Recipients:    recipientKeys,
		},
		EncryptedDEK:   wrapped,
		EncryptedValue: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:          base64.StdEncoding.EncodeToString(nonce),
		Tag:            base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// Decrypt returns the plaintext or ErrDecryptionFailed. It never returns partial data.
// The caller owns the returned buffer and must zero it.
func (s *envelopeService) Decrypt(
	record *cryptoDomain.EncryptedSecretRecord,
	identity age.Identity,
) ([]byte, error) {
	if record.Encryption.Algorithm != cryptoDomain.ChaCha20Poly1305 {
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrUnsupportedAlgorithm, record.Encryption.Algorithm)
	}

	dek, err := s.wrapper.Unwrap(record.EncryptedDEK, identity)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dek)

	return openValue(record, dek)
}

// Rewrap replaces the wrapped DEK and recipient list. The DEK is checked against the
// stored value before the new wrap is produced.
func (s *envelopeService) Rewrap(
	record *cryptoDomain.EncryptedSecretRecord,
	identity age.Identity,
	recipients []age.Recipient,
) (*cryptoDomain.EncryptedSecretRecord, error) {
	if len(recipients) == 0 {
		return nil, cryptoDomain.ErrNoRecipients
	}

	recipientKeys, err := recipientStrings(recipients)
	if err != nil {
		return nil, err
	}

	dek, err := s.wrapper.Unwrap(record.EncryptedDEK, identity)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dek)

	plaintext, err := openValue(record, dek)
	if err != nil {
		return nil, err
	}
	cryptoDomain.Zero(plaintext)

	wrapped, err := s.wrapper.Wrap(dek, recipients)
	if err != nil {
		return nil, err
	}

	rewrapped := record.Clone()
	rewrapped.EncryptedDEK = wrapped
	rewrapped.Encryption.Recipients = recipientKeys
	rewrapped.UpdatedAt = s.now().UTC()
	return rewrapped, nil
}

// RecordRecipients parses the recipient public keys listed in a record.
func RecordRecipients(record *cryptoDomain.EncryptedSecretRecord) ([]age.Recipient, error) {
	recipients := make([]age.Recipient, 0, len(record.Encryption.Recipients))
	for _, publicKey := range record.Encryption.Recipients {
		recipient, err := cryptoDomain.ParseRecipient(publicKey)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

// openValue decodes the record fields and authenticates and decrypts the value with dek.
func openValue(record *cryptoDomain.EncryptedSecretRecord, dek []byte) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(record.EncryptedValue)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", cryptoDomain.ErrDecryptionFailed)
	}
	nonce, err := base64.StdEncoding.DecodeString(record.Nonce)
	if err != nil || len(nonce) != cryptoDomain.NonceSize {
		return nil, fmt.Errorf("%w: invalid nonce", cryptoDomain.ErrDecryptionFailed)
	}
	tag, err := base64.StdEncoding.DecodeString(record.Tag)
	if err != nil || len(tag) != cryptoDomain.TagSize {
		return nil, fmt.Errorf("%w: invalid tag", cryptoDomain.ErrDecryptionFailed)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	cipher, err := NewChaCha20Poly1305(dek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}
	return cipher.Decrypt(sealed, nonce, nil)
}

// recipientStrings renders recipients as age1... strings for the record header.
func recipientStrings(recipients []age.Recipient) ([]string, error) {
	keys := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		stringer, ok := recipient.(fmt.Stringer)
		if !ok {
			return nil, fmt.Errorf("%w: recipient has no public key encoding", cryptoDomain.ErrInvalidRecipient)
		}
		keys = append(keys, stringer.String())
	}
	return keys, nil
}
