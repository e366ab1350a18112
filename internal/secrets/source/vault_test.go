package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

type stubKVReader struct {
	mount, path, key string
	value            []byte
	err              error
}

func (s *stubKVReader) ReadKV(_ context.Context, mount, path, key string) ([]byte, error) {
	s.mount, s.path, s.key = mount, path, key
	return s.value, s.err
}

func TestVaultSource_Resolve(t *testing.T) {
	ctx := context.Background()
	rctx := secretsDomain.NewResolutionContext("")

	t.Run("uses default mount", func(t *testing.T) {
		reader := &stubKVReader{value: []byte("s3cr3t")}
		value, err := NewVaultSource(reader).Resolve(ctx, secretsDomain.SecretDescriptor{
			Name:      "DB_PASSWORD",
			Source:    secretsDomain.SourceVault,
			VaultPath: "app/db",
			VaultKey:  "password",
		}, rctx)
		require.NoError(t, err)

		assert.Equal(t, "s3cr3t", string(value.Bytes()))
		assert.Equal(t, secretsDomain.FromVault, value.ResolvedFrom())
		assert.Equal(t, "secret", reader.mount)
		assert.Equal(t, "app/db", reader.path)
		assert.Equal(t, "password", reader.key)
	})

	t.Run("propagates classified errors", func(t *testing.T) {
		reader := &stubKVReader{err: secretsDomain.ErrAuthentication}
		_, err := NewVaultSource(reader).Resolve(ctx, secretsDomain.SecretDescriptor{
			Name:       "DB_PASSWORD",
			Source:     secretsDomain.SourceVault,
			VaultPath:  "app/db",
			VaultKey:   "password",
			VaultMount: "kv",
		}, rctx)
		assert.True(t, errors.Is(err, secretsDomain.ErrAuthentication))
		assert.Equal(t, "kv", reader.mount)
	})

	t.Run("missing key is a config error", func(t *testing.T) {
		_, err := NewVaultSource(&stubKVReader{}).Resolve(ctx, secretsDomain.SecretDescriptor{
			Name:      "DB_PASSWORD",
			Source:    secretsDomain.SourceVault,
			VaultPath: "app/db",
		}, rctx)
		assert.True(t, errors.Is(err, secretsDomain.ErrConfig))
	})
}
