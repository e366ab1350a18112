package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func staticLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestEnvSource_Priority(t *testing.T) {
	ctx := context.Background()
	descriptor := secretsDomain.SecretDescriptor{
		Name:     "API_KEY",
		Source:   secretsDomain.SourceEnv,
		FromFile: "api_key.txt",
	}

	tests := []struct {
		name         string
		shell        map[string]string
		files        map[string]string
		customFile   string
		expected     string
		expectedFrom secretsDomain.ResolvedFrom
	}{
		{
			name:  "shell wins over every file",
			shell: map[string]string{"API_KEY": "from-shell"},
			files: map[string]string{
				".env.local":  "API_KEY=from-local\n",
				".env":        "API_KEY=from-env\n",
				"api_key.txt": "from-file\n",
			},
			expected:     "from-shell",
			expectedFrom: secretsDomain.FromShellEnv,
		},
		{
			name: "env local wins over env",
			files: map[string]string{
				".env.local":  "API_KEY=from-local\n",
				".env":        "API_KEY=from-env\n",
				"api_key.txt": "from-file\n",
			},
			expected:     "from-local",
			expectedFrom: secretsDomain.FromEnvLocalFile,
		},
		{
			name: "env wins over from_file",
			files: map[string]string{
				".env.local":  "OTHER=1\n",
				".env":        "# comment\nexport API_KEY=\"from-env\"\n",
				"api_key.txt": "from-file\n",
			},
			expected:     "from-env",
			expectedFrom: secretsDomain.FromEnvFile,
		},
		{
			name:         "from_file is trimmed",
			files:        map[string]string{"api_key.txt": "  from-file\n\n"},
			expected:     "from-file",
			expectedFrom: secretsDomain.FromFromFile,
		},
		{
			name: "custom env file replaces the default lookup",
			files: map[string]string{
				".env.local": "API_KEY=from-local\n",
				"ci.env":     "API_KEY=from-custom\n",
			},
			customFile:   "ci.env",
			expected:     "from-custom",
			expectedFrom: secretsDomain.FromCustomEnvFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			rctx := secretsDomain.NewResolutionContext(dir)
			rctx.CustomEnvFile = tt.customFile

			value, err := NewEnvSource(staticLookup(tt.shell)).Resolve(ctx, descriptor, rctx)
			require.NoError(t, err)
			defer value.Destroy()

			assert.Equal(t, tt.expected, string(value.Bytes()))
			assert.Equal(t, tt.expectedFrom, value.ResolvedFrom())
		})
	}
}

func TestEnvSource_Errors(t *testing.T) {
	ctx := context.Background()
	descriptor := secretsDomain.SecretDescriptor{Name: "API_KEY", Source: secretsDomain.SourceEnv}

	t.Run("not found anywhere", func(t *testing.T) {
		rctx := secretsDomain.NewResolutionContext(t.TempDir())
		_, err := NewEnvSource(staticLookup(nil)).Resolve(ctx, descriptor, rctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrSecretNotFound))
	})

	t.Run("missing custom env file is skipped", func(t *testing.T) {
		rctx := secretsDomain.NewResolutionContext(t.TempDir())
		rctx.CustomEnvFile = "missing.env"
		_, err := NewEnvSource(staticLookup(nil)).Resolve(ctx, descriptor, rctx)
		assert.True(t, errors.Is(err, secretsDomain.ErrSecretNotFound))
	})

	t.Run("unparseable env file is a config error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "API_KEY=\"unterminated\n")
		rctx := secretsDomain.NewResolutionContext(dir)

		_, err := NewEnvSource(staticLookup(nil)).Resolve(ctx, descriptor, rctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, secretsDomain.ErrConfig))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewEnvSource(staticLookup(nil)).Resolve(cancelled, descriptor, secretsDomain.NewResolutionContext(""))
		assert.True(t, errors.Is(err, secretsDomain.ErrTimeout))
	})
}
