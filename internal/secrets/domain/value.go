package domain

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
)

const redacted = "[REDACTED]"

// ResolvedFrom records which tier produced a value.
type ResolvedFrom string

const (
	FromShellEnv      ResolvedFrom = "shell_env"
	FromEnvLocalFile  ResolvedFrom = "env_local_file"
	FromEnvFile       ResolvedFrom = "env_file"
	FromCustomEnvFile ResolvedFrom = "custom_env_file"
	FromFromFile      ResolvedFrom = "from_file"
	FromVault         ResolvedFrom = "vault"
	FromLocalFile     ResolvedFrom = "file"
	FromS3            ResolvedFrom = "s3"
	FromS3Cache       ResolvedFrom = "s3_cache"
)

// Source returns the source kind whose tier produced the value.
func (r ResolvedFrom) Source() Source {
	switch r {
	case FromVault:
		return SourceVault
	case FromLocalFile:
		return SourceFile
	case FromS3, FromS3Cache:
		return SourceS3
	default:
		return SourceEnv
	}
}

// FileMetadata describes a file secret. The content is never read by the resolver.
type FileMetadata struct {
	Path        string
	MountPath   string
	Permissions string
}

// SecretValue owns a resolved plaintext buffer.
//
// The buffer is zeroed by Destroy, which every owner must call on every exit path.
// All formatting and serialization paths print [REDACTED].
type SecretValue struct {
	data         []byte
	resolvedFrom ResolvedFrom
	file         *FileMetadata
}

// NewSecretValue takes ownership of data.
func NewSecretValue(data []byte, resolvedFrom ResolvedFrom) *SecretValue {
	return &SecretValue{data: data, resolvedFrom: resolvedFrom}
}

// NewFileSecretValue creates a metadata-only value for a file secret.
func NewFileSecretValue(metadata FileMetadata) *SecretValue {
	return &SecretValue{resolvedFrom: FromLocalFile, file: &metadata}
}

// Bytes returns the backing buffer. It is invalid after Destroy.
func (v *SecretValue) Bytes() []byte {
	return v.data
}

// Len returns the length of the value.
func (v *SecretValue) Len() int {
	return len(v.data)
}

// ResolvedFrom returns the tier that produced the value.
func (v *SecretValue) ResolvedFrom() ResolvedFrom {
	return v.resolvedFrom
}

// File returns metadata for file secrets, nil otherwise.
func (v *SecretValue) File() *FileMetadata {
	return v.file
}

// Destroy zeroes the buffer. It is safe to call more than once.
func (v *SecretValue) Destroy() {
	if v == nil {
		return
	}
	cryptoDomain.Zero(v.data)
	v.data = nil
}

// String implements fmt.Stringer without revealing the value.
func (v *SecretValue) String() string {
	return redacted
}

// GoString implements fmt.GoStringer without revealing the value.
func (v *SecretValue) GoString() string {
	return redacted
}

// Format implements fmt.Formatter so every verb prints [REDACTED].
func (v *SecretValue) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON implements json.Marshaler without revealing the value.
func (v *SecretValue) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// LogValue implements slog.LogValuer.
func (v *SecretValue) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// Secrets is the resolved map handed to consumers. Close destroys every value.
type Secrets map[string]*SecretValue

// Close zeroes and removes every value.
func (s Secrets) Close() {
	for name, value := range s {
		value.Destroy()
		delete(s, name)
	}
}

// Names returns the resolved names in sorted order.
func (s Secrets) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
