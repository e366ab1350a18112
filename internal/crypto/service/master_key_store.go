package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/zalando/go-keyring"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

const (
	// MasterKeyEnvVar holds an AGE-SECRET-KEY-1 string and takes precedence over every other source.
	MasterKeyEnvVar = "SINDRI_MASTER_KEY"

	keyringService = "sindri-secrets"
	keyringUser    = "master-key"

	// sealedPrefix marks a key file whose identity is encrypted with a KMS keeper.
	sealedPrefix = "SINDRI-KMS-SEALED:"
)

// MasterKeyStoreConfig selects where the master key is read from and written to.
type MasterKeyStoreConfig struct {
	// KeyFile is the identity file path used when no env or keyring key is present.
	KeyFile string
	// UseKeyring enables the OS keyring lookup.
	UseKeyring bool
	// KMSKeyURI, when set, seals newly generated key files and unseals sealed ones.
	KMSKeyURI string
}

// masterKeyStore implements MasterKeyStore.
//
// Key resolution order:
//  1. SINDRI_MASTER_KEY environment variable
//  2. OS keyring (when enabled)
//  3. Key file, which must not be accessible by group or others
type masterKeyStore struct {
	config     MasterKeyStoreConfig
	kmsService KMSService
	logger     *slog.Logger
}

// NewMasterKeyStore creates a MasterKeyStore.
func NewMasterKeyStore(config MasterKeyStoreConfig, kmsService KMSService, logger *slog.Logger) MasterKeyStore {
	return &masterKeyStore{
		config:     config,
		kmsService: kmsService,
		logger:     logger,
	}
}

// Generate writes a new identity to path with mode 0600.
func (s *masterKeyStore) Generate(ctx context.Context, path string, force bool) (*cryptoDomain.MasterKey, error) {
	key, err := cryptoDomain.GenerateMasterKey()
	if err != nil {
		return nil, err
	}

	content := key.Encode(time.Now())
	defer cryptoDomain.Zero(content)

	if s.config.KMSKeyURI != "" {
		sealed, err := s.seal(ctx, content)
		if err != nil {
			return nil, err
		}
		content = sealed
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrMasterKeyExists, path)
		}
		return nil, fmt.Errorf("failed to create master key file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	// A forced overwrite keeps the old inode, so reset its mode too.
	if err := file.Chmod(0o600); err != nil {
		return nil, fmt.Errorf("failed to set master key file mode: %w", err)
	}
	if _, err := file.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write master key file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync master key file: %w", err)
	}

	return key, nil
}

// Load resolves the master key from env, keyring, then file.
func (s *masterKeyStore) Load(ctx context.Context) (*cryptoDomain.MasterKey, error) {
	if value, ok := os.LookupEnv(MasterKeyEnvVar); ok && strings.TrimSpace(value) != "" {
		key, err := cryptoDomain.ParseMasterKey(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", MasterKeyEnvVar, err)
		}
		return key, nil
	}

	if s.config.UseKeyring {
		secret, err := keyring.Get(keyringService, keyringUser)
		switch {
		case err == nil:
			key, err := cryptoDomain.ParseMasterKey(secret)
			if err != nil {
				return nil, fmt.Errorf("failed to parse master key from keyring: %w", err)
			}
			return key, nil
		case errors.Is(err, keyring.ErrNotFound):
		default:
			s.logger.Warn("keyring unavailable, falling back to key file", slog.Any("error", err))
		}
	}

	if s.config.KeyFile == "" {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}
	return s.LoadFile(ctx, s.config.KeyFile)
}

// LoadFile reads an identity file after checking its permissions.
func (s *masterKeyStore) LoadFile(ctx context.Context, path string) (*cryptoDomain.MasterKey, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrMasterKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat master key file: %w", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o077 != 0 {
		return nil, fmt.Errorf("%w: %s has mode %04o", cryptoDomain.ErrInsecureKeyFile, path, info.Mode().Perm())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read master key file: %w", err)
	}
	defer cryptoDomain.Zero(content)

	if strings.HasPrefix(string(content), sealedPrefix) {
		unsealed, err := s.unseal(ctx, content)
		if err != nil {
			return nil, err
		}
		defer cryptoDomain.Zero(unsealed)
		return cryptoDomain.ParseMasterKey(string(unsealed))
	}

	return cryptoDomain.ParseMasterKey(string(content))
}

// StoreInKeyring saves the secret key in the OS keyring.
func (s *masterKeyStore) StoreInKeyring(key *cryptoDomain.MasterKey) error {
	if err := keyring.Set(keyringService, keyringUser, key.SecretKey()); err != nil {
		return fmt.Errorf("failed to store master key in keyring: %w", err)
	}
	return nil
}

func (s *masterKeyStore) seal(ctx context.Context, content []byte) ([]byte, error) {
	keeper, err := s.kmsService.OpenKeeper(ctx, s.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("failed to seal master key: %w", err)
	}
	return []byte(sealedPrefix + base64.StdEncoding.EncodeToString(ciphertext) + "\n"), nil
}

func (s *masterKeyStore) unseal(ctx context.Context, content []byte) ([]byte, error) {
	if s.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("%w: key file is sealed but no KMS key URI is configured", cryptoDomain.ErrInvalidMasterKey)
	}

	encoded := strings.TrimSpace(strings.TrimPrefix(string(content), sealedPrefix))
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: sealed key is not base64", cryptoDomain.ErrInvalidMasterKey)
	}

	keeper, err := s.kmsService.OpenKeeper(ctx, s.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal master key: %w", err)
	}
	return plaintext, nil
}
