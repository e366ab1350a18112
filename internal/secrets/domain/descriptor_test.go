package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
)

func sourcePtr(s Source) *Source {
	return &s
}

func TestParseSource(t *testing.T) {
	for input, want := range map[string]Source{"env": SourceEnv, "File": SourceFile, " VAULT ": SourceVault, "s3": SourceS3} {
		got, err := ParseSource(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSource("keychain")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestSecretDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name       string
		descriptor SecretDescriptor
		wantErr    bool
	}{
		{name: "env", descriptor: SecretDescriptor{Name: "API_KEY", Source: SourceEnv}},
		{name: "file", descriptor: SecretDescriptor{Name: "TLS_CERT", Source: SourceFile, Path: "certs/tls.crt"}},
		{
			name:       "vault",
			descriptor: SecretDescriptor{Name: "DB_PASSWORD", Source: SourceVault, VaultPath: "app/db", VaultKey: "password"},
		},
		{
			name:       "s3 with env fallback",
			descriptor: SecretDescriptor{Name: "TOKEN", Source: SourceS3, S3Path: "prod/token", Fallback: sourcePtr(SourceEnv)},
		},
		{name: "lowercase name", descriptor: SecretDescriptor{Name: "api_key", Source: SourceEnv}, wantErr: true},
		{name: "unknown source", descriptor: SecretDescriptor{Name: "X", Source: "keychain"}, wantErr: true},
		{name: "file without path", descriptor: SecretDescriptor{Name: "X", Source: SourceFile}, wantErr: true},
		{name: "vault without key", descriptor: SecretDescriptor{Name: "X", Source: SourceVault, VaultPath: "a"}, wantErr: true},
		{name: "s3 without path", descriptor: SecretDescriptor{Name: "X", Source: SourceS3}, wantErr: true},
		{
			name:       "s3 path traversal",
			descriptor: SecretDescriptor{Name: "X", Source: SourceS3, S3Path: "../other-team/key"},
			wantErr:    true,
		},
		{
			name:       "s3 path with trailing space",
			descriptor: SecretDescriptor{Name: "X", Source: SourceS3, S3Path: "prod/db "},
			wantErr:    true,
		},
		{
			name:       "vault path with leading space",
			descriptor: SecretDescriptor{Name: "X", Source: SourceVault, VaultPath: " app/db", VaultKey: "password"},
			wantErr:    true,
		},
		{
			name:       "vault key with trailing newline",
			descriptor: SecretDescriptor{Name: "X", Source: SourceVault, VaultPath: "app/db", VaultKey: "password\n"},
			wantErr:    true,
		},
		{
			name:       "fallback on env source",
			descriptor: SecretDescriptor{Name: "X", Source: SourceEnv, Fallback: sourcePtr(SourceS3)},
			wantErr:    true,
		},
		{
			name:       "fallback to itself",
			descriptor: SecretDescriptor{Name: "X", Source: SourceS3, S3Path: "a", Fallback: sourcePtr(SourceS3)},
			wantErr:    true,
		},
		{
			name:       "unknown fallback",
			descriptor: SecretDescriptor{Name: "X", Source: SourceS3, S3Path: "a", Fallback: sourcePtr("ftp")},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.descriptor.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfig)
				assert.True(t, errors.Is(err, errors.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSecretDescriptor_WithDefaults(t *testing.T) {
	d := SecretDescriptor{Name: "TLS_CERT", Source: SourceFile, Path: "./certs/tls.crt"}.WithDefaults()

	assert.Equal(t, "0644", d.Permissions)
	assert.Equal(t, "/secrets/tls.crt", d.MountPath)
	assert.Equal(t, "secret", d.VaultMount)

	custom := SecretDescriptor{Name: "K", Source: SourceFile, Path: "k", MountPath: "/etc/k", Permissions: "0600"}.WithDefaults()
	assert.Equal(t, "/etc/k", custom.MountPath)
	assert.Equal(t, "0600", custom.Permissions)
}

func TestSecretDescriptor_WithSource(t *testing.T) {
	d := SecretDescriptor{Name: "TOKEN", Source: SourceS3, S3Path: "p", Fallback: sourcePtr(SourceEnv), Required: true}

	fallback := d.WithSource(SourceEnv)
	assert.Equal(t, SourceEnv, fallback.Source)
	assert.Nil(t, fallback.Fallback)
	assert.Equal(t, "TOKEN", fallback.Name)
	assert.True(t, fallback.Required)
	assert.NotNil(t, d.Fallback)
}

func TestValidateUniqueNames(t *testing.T) {
	assert.NoError(t, ValidateUniqueNames([]SecretDescriptor{{Name: "A"}, {Name: "B"}}))
	assert.ErrorIs(t, ValidateUniqueNames([]SecretDescriptor{{Name: "A"}, {Name: "A"}}), ErrConfig)
}

func TestParseSyncDirection(t *testing.T) {
	direction, err := ParseSyncDirection("both")
	require.NoError(t, err)
	assert.Equal(t, SyncBoth, direction)

	_, err = ParseSyncDirection("sideways")
	assert.ErrorIs(t, err, ErrConfig)
}
