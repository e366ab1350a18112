package domain

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
)

func validRecord() *EncryptedSecretRecord {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &EncryptedSecretRecord{
		Version:    RecordVersion,
		SecretName: "API_KEY",
		CreatedAt:  now,
		UpdatedAt:  now,
		Encryption: EncryptionInfo{
			Algorithm:     ChaCha20Poly1305,
			KeyDerivation: AgeX25519,
			Recipients:    []string{"age1example"},
		},
		EncryptedDEK:   "-----BEGIN AGE ENCRYPTED FILE-----\n...\n-----END AGE ENCRYPTED FILE-----\n",
		EncryptedValue: base64.StdEncoding.EncodeToString([]byte("ciphertext")),
		Nonce:          base64.StdEncoding.EncodeToString(make([]byte, NonceSize)),
		Tag:            base64.StdEncoding.EncodeToString(make([]byte, TagSize)),
		Metadata:       RecordMetadata{RotationCount: 0},
	}
}

func TestEncryptedSecretRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *EncryptedSecretRecord)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *EncryptedSecretRecord) {}, wantErr: false},
		{name: "empty ciphertext is allowed", mutate: func(r *EncryptedSecretRecord) { r.EncryptedValue = "" }},
		{name: "unknown version", mutate: func(r *EncryptedSecretRecord) { r.Version = "2.0" }, wantErr: true},
		{name: "missing name", mutate: func(r *EncryptedSecretRecord) { r.SecretName = "" }, wantErr: true},
		{
			name:    "unsupported algorithm",
			mutate:  func(r *EncryptedSecretRecord) { r.Encryption.Algorithm = "aes-gcm" },
			wantErr: true,
		},
		{
			name:    "no recipients",
			mutate:  func(r *EncryptedSecretRecord) { r.Encryption.Recipients = nil },
			wantErr: true,
		},
		{
			name:    "short nonce",
			mutate:  func(r *EncryptedSecretRecord) { r.Nonce = base64.StdEncoding.EncodeToString([]byte("short")) },
			wantErr: true,
		},
		{name: "bad tag encoding", mutate: func(r *EncryptedSecretRecord) { r.Tag = "%%%" }, wantErr: true},
		{name: "missing dek", mutate: func(r *EncryptedSecretRecord) { r.EncryptedDEK = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			err := record.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEncryptedSecretRecord_ValidateHeader(t *testing.T) {
	t.Run("payload encoding is not checked", func(t *testing.T) {
		record := validRecord()
		record.Nonce = "%%%"
		record.Tag = base64.StdEncoding.EncodeToString([]byte("short"))

		assert.NoError(t, record.ValidateHeader())
		assert.Error(t, record.ValidateEncoding())
	})

	t.Run("header fields are checked", func(t *testing.T) {
		record := validRecord()
		record.Version = "2.0"

		assert.Error(t, record.ValidateHeader())
		assert.NoError(t, record.ValidateEncoding())
	})
}

func TestEncryptedSecretRecord_JSON(t *testing.T) {
	record := validRecord()
	record.Metadata.LastRotatedBy = "ops"

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{
		"version", "secret_name", "created_at", "updated_at", "encryption",
		"encrypted_dek", "encrypted_value", "nonce", "tag", "metadata",
	} {
		assert.Contains(t, fields, key)
	}

	encryption := fields["encryption"].(map[string]any)
	assert.Equal(t, "chacha20poly1305", encryption["algorithm"])
	assert.Equal(t, "age-x25519", encryption["key_derivation"])
	assert.Equal(t, "2026-03-01T12:00:00Z", fields["created_at"])

	metadata := fields["metadata"].(map[string]any)
	assert.Equal(t, float64(0), metadata["rotation_count"])
	assert.Equal(t, "ops", metadata["last_rotated_by"])
}

func TestEncryptedSecretRecord_Clone(t *testing.T) {
	record := validRecord()
	record.Metadata.Tags = map[string]string{"env": "prod"}

	clone := record.Clone()
	clone.Encryption.Recipients[0] = "changed"
	clone.Metadata.Tags["env"] = "dev"

	assert.Equal(t, "age1example", record.Encryption.Recipients[0])
	assert.Equal(t, "prod", record.Metadata.Tags["env"])
	assert.True(t, record.HasRecipient("age1example"))
	assert.False(t, record.HasRecipient("age1other"))
}
