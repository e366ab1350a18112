package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

const validManifest = `
name: my-project
deployment:
  provider: docker
secrets:
  - name: API_KEY
    source: env
    required: true
    fromFile: ./secrets/api_key
  - name: TLS_CERT
    source: file
    path: ./certs/tls.pem
    permissions: "0600"
  - name: DB_PASSWORD
    source: Vault
    vaultPath: app/db
    vaultKey: password
    fallback: env
  - name: STRIPE_KEY
    source: s3
    s3Path: prod/stripe
    required: true
`

func TestParse(t *testing.T) {
	t.Run("Success_AllSources", func(t *testing.T) {
		m, err := Parse([]byte(validManifest))
		require.NoError(t, err)
		require.Len(t, m.Secrets, 4)

		apiKey := m.Secrets[0]
		assert.Equal(t, "API_KEY", apiKey.Name)
		assert.Equal(t, secretsDomain.SourceEnv, apiKey.Source)
		assert.True(t, apiKey.Required)
		assert.Equal(t, "./secrets/api_key", apiKey.FromFile)

		cert := m.Secrets[1]
		assert.Equal(t, "0600", cert.Permissions)
		assert.Equal(t, "/secrets/tls.pem", cert.MountPath)

		db := m.Secrets[2]
		assert.Equal(t, secretsDomain.SourceVault, db.Source)
		assert.Equal(t, secretsDomain.DefaultVaultMount, db.VaultMount)
		require.NotNil(t, db.Fallback)
		assert.Equal(t, secretsDomain.SourceEnv, *db.Fallback)
		assert.False(t, db.Required)

		assert.Equal(t, "prod/stripe", m.Secrets[3].S3Path)
		assert.Len(t, m.Filter(secretsDomain.SourceS3), 1)
	})

	t.Run("Success_EmptyDocument", func(t *testing.T) {
		m, err := Parse([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, m.Secrets)
	})

	t.Run("Success_NoSecretsSection", func(t *testing.T) {
		m, err := Parse([]byte("name: my-project\n"))
		require.NoError(t, err)
		assert.Empty(t, m.Secrets)
	})

	tests := []struct {
		name     string
		manifest string
		contains string
	}{
		{
			name:     "unknown secret key",
			manifest: "secrets:\n  - name: API_KEY\n    source: env\n    vaultPth: x\n",
			contains: `"vaultPth" (line 4)`,
		},
		{
			name:     "unknown source",
			manifest: "secrets:\n  - name: API_KEY\n    source: ssm\n",
			contains: "unknown source",
		},
		{
			name:     "unknown fallback",
			manifest: "secrets:\n  - name: API_KEY\n    source: s3\n    s3Path: a\n    fallback: ssm\n",
			contains: "unknown source",
		},
		{
			name:     "fallback on env",
			manifest: "secrets:\n  - name: API_KEY\n    source: env\n    fallback: s3\n",
			contains: "fallback is only supported",
		},
		{
			name:     "missing vault key",
			manifest: "secrets:\n  - name: API_KEY\n    source: vault\n    vaultPath: app\n",
			contains: "secrets[0]",
		},
		{
			name:     "invalid name",
			manifest: "secrets:\n  - name: api-key\n    source: env\n",
			contains: "api-key",
		},
		{
			name:     "duplicate names",
			manifest: "secrets:\n  - name: A\n    source: env\n  - name: A\n    source: env\n",
			contains: "duplicate secret name",
		},
		{
			name:     "secret is not a mapping",
			manifest: "secrets:\n  - API_KEY\n",
			contains: "expected a mapping",
		},
		{
			name:     "malformed yaml",
			manifest: "secrets: [\n",
			contains: "invalid manifest",
		},
	}

	for _, tt := range tests {
		t.Run("Error_"+tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			require.Error(t, err)
			assert.True(t, errors.Is(err, secretsDomain.ErrConfig))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(dir, DefaultFile)
		require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o600))

		m, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, m.Secrets, 4)
	})

	t.Run("Error_Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrConfig))
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Error_PrefixedWithPath", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("secrets:\n  - name: A\n    source: nope\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
