package source

import (
	"context"
	"fmt"

	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// KVReader reads one key of a KV v2 secret.
type KVReader interface {
	ReadKV(ctx context.Context, mount, path, key string) ([]byte, error)
}

// VaultSource resolves secrets from Vault through a shared client.
type VaultSource struct {
	client KVReader
}

// NewVaultSource creates a VaultSource.
func NewVaultSource(client KVReader) *VaultSource {
	return &VaultSource{client: client}
}

// Resolve reads descriptor.VaultKey from descriptor.VaultPath.
func (s *VaultSource) Resolve(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	_ secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	descriptor = descriptor.WithDefaults()
	if descriptor.VaultPath == "" || descriptor.VaultKey == "" {
		return nil, fmt.Errorf("%w: secret %q requires vaultPath and vaultKey", secretsDomain.ErrConfig, descriptor.Name)
	}

	value, err := s.client.ReadKV(ctx, descriptor.VaultMount, descriptor.VaultPath, descriptor.VaultKey)
	if err != nil {
		return nil, err
	}
	return secretsDomain.NewSecretValue(value, secretsDomain.FromVault), nil
}
