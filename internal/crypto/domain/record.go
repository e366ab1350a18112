package domain

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/sindri-dev/secrets/internal/validation"
)

// EncryptedSecretRecord is the at-rest JSON document stored per secret in S3.
//
// The value is encrypted under a per-secret DEK with ChaCha20-Poly1305, and the DEK
// is wrapped for every recipient with age. The master key never encrypts the value.
//
// Fields:
//   - Version: Wire format version, always RecordVersion for new records
//   - SecretName: Logical name the record was pushed under
//   - CreatedAt/UpdatedAt: RFC 3339 timestamps; UpdatedAt changes on rotation
//   - Encryption: Cipher, key wrapping scheme and recipient public keys
//   - EncryptedDEK: age-armored wrapped DEK usable by any listed recipient
//   - EncryptedValue: Base64 ciphertext without the authentication tag
//   - Nonce: Base64 96-bit nonce
//   - Tag: Base64 128-bit Poly1305 tag
//   - Metadata: Rotation bookkeeping and optional description and tags
type EncryptedSecretRecord struct {
	Version        string         `json:"version"`
	SecretName     string         `json:"secret_name"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Encryption     EncryptionInfo `json:"encryption"`
	EncryptedDEK   string         `json:"encrypted_dek"`
	EncryptedValue string         `json:"encrypted_value"`
	Nonce          string         `json:"nonce"`
	Tag            string         `json:"tag"`
	Metadata       RecordMetadata `json:"metadata"`
}

// EncryptionInfo describes how a record was encrypted.
type EncryptionInfo struct {
	Algorithm     Algorithm     `json:"algorithm"`
	KeyDerivation KeyDerivation `json:"key_derivation"`
	Recipients    []string      `json:"recipients"`
}

// RecordMetadata carries rotation bookkeeping.
type RecordMetadata struct {
	RotationCount int               `json:"rotation_count"`
	LastRotatedBy string            `json:"last_rotated_by,omitempty"`
	Description   string            `json:"description,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// Validate checks the record header and encoded fields.
// The ciphertext may be empty because an empty plaintext encrypts to a bare tag.
func (r *EncryptedSecretRecord) Validate() error {
	if err := r.ValidateHeader(); err != nil {
		return err
	}
	return r.ValidateEncoding()
}

// ValidateHeader checks the fields that describe the record, leaving the
// authenticated payload to decryption.
func (r *EncryptedSecretRecord) ValidateHeader() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Version, validation.Required, validation.In(RecordVersion)),
		validation.Field(&r.SecretName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Encryption),
		validation.Field(&r.EncryptedDEK, validation.Required),
		validation.Field(&r.Nonce, validation.Required),
		validation.Field(&r.Tag, validation.Required),
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}
	return nil
}

// ValidateEncoding checks the base64 payload fields and their decoded sizes.
func (r *EncryptedSecretRecord) ValidateEncoding() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.EncryptedValue, customValidation.Base64),
		validation.Field(&r.Nonce, customValidation.Base64OfLength(NonceSize)),
		validation.Field(&r.Tag, customValidation.Base64OfLength(TagSize)),
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}
	return nil
}

// Validate checks the algorithm, key derivation and recipient list.
func (e EncryptionInfo) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Algorithm, validation.Required, validation.In(ChaCha20Poly1305)),
		validation.Field(&e.KeyDerivation, validation.Required, validation.In(AgeX25519)),
		validation.Field(&e.Recipients, validation.Required),
	)
}

// Clone returns a deep copy of the record.
func (r *EncryptedSecretRecord) Clone() *EncryptedSecretRecord {
	clone := *r
	clone.Encryption.Recipients = append([]string(nil), r.Encryption.Recipients...)
	if r.Metadata.Tags != nil {
		clone.Metadata.Tags = make(map[string]string, len(r.Metadata.Tags))
		for k, v := range r.Metadata.Tags {
			clone.Metadata.Tags[k] = v
		}
	}
	return &clone
}

// HasRecipient reports whether publicKey is listed as a recipient.
func (r *EncryptedSecretRecord) HasRecipient(publicKey string) bool {
	for _, recipient := range r.Encryption.Recipients {
		if recipient == publicKey {
			return true
		}
	}
	return false
}
