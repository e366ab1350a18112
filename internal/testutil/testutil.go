// Package testutil provides testing utilities for master keys, encrypted records
// and on-disk fixtures.
//
// Master keys:
//
//	key := testutil.NewMasterKey(t)
//	path := testutil.WriteMasterKeyFile(t, dir, key)
//
// Encrypted records:
//
//	record := testutil.EncryptRecord(t, "DB_PASSWORD", []byte("hunter2"), key)
//
// Files:
//
//	path := testutil.WriteFile(t, dir, ".env", "API_KEY=abc\n", 0o600)
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"filippo.io/age"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	cryptoService "github.com/sindri-dev/secrets/internal/crypto/service"
)

// MasterKeyFileName is the default master key file name used by CLI commands.
const MasterKeyFileName = ".sindri-master.key"

// NewMasterKey generates a fresh X25519 master key.
func NewMasterKey(t *testing.T) *cryptoDomain.MasterKey {
	t.Helper()

	key, err := cryptoDomain.GenerateMasterKey()
	require.NoError(t, err)
	return key
}

// WriteMasterKeyFile writes key to dir/.sindri-master.key with mode 0600 and returns the path.
func WriteMasterKeyFile(t *testing.T, dir string, key *cryptoDomain.MasterKey) string {
	t.Helper()

	return WriteFile(t, dir, MasterKeyFileName, string(key.Encode(time.Now())), 0o600)
}

// WriteFile writes content to dir/name with mode, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	// WriteFile is subject to umask.
	require.NoError(t, os.Chmod(path, mode))
	return path
}

// NewEnvelope returns the production envelope service with the wall clock.
func NewEnvelope() cryptoService.EnvelopeService {
	return cryptoService.NewEnvelopeService(cryptoService.NewAgeKeyWrapper(), time.Now)
}

// EncryptRecord encrypts value for every key.
func EncryptRecord(
	t *testing.T,
	secretName string,
	value []byte,
	keys ...*cryptoDomain.MasterKey,
) *cryptoDomain.EncryptedSecretRecord {
	t.Helper()

	recipients := make([]age.Recipient, 0, len(keys))
	for _, key := range keys {
		recipients = append(recipients, key.Recipient())
	}

	record, err := NewEnvelope().Encrypt(secretName, value, recipients)
	require.NoError(t, err)
	return record
}

// DecryptRecord decrypts record with key and returns the plaintext as a string.
func DecryptRecord(t *testing.T, record *cryptoDomain.EncryptedSecretRecord, key *cryptoDomain.MasterKey) string {
	t.Helper()

	plaintext, err := NewEnvelope().Decrypt(record, key.Identity())
	require.NoError(t, err)
	return string(plaintext)
}
