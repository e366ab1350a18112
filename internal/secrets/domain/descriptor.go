// Package domain defines the secret descriptor, resolution context, resolved value
// and error types shared by sources, the resolver and the store.
package domain

import (
	"fmt"
	"path"
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/sindri-dev/secrets/internal/validation"
)

// Source identifies where a secret is resolved from.
type Source string

const (
	SourceEnv   Source = "env"
	SourceFile  Source = "file"
	SourceVault Source = "vault"
	SourceS3    Source = "s3"
)

const (
	// DefaultPermissions is applied to file secrets that do not declare a mode.
	DefaultPermissions = "0644"
	// DefaultVaultMount is the KV v2 mount used when none is declared.
	DefaultVaultMount = "secret"
	// DefaultMountDir is the directory file secrets are mounted into by default.
	DefaultMountDir = "/secrets"
)

// ParseSource converts a manifest value such as "S3" or "vault".
func ParseSource(value string) (Source, error) {
	source := Source(strings.ToLower(strings.TrimSpace(value)))
	if !source.Valid() {
		return "", fmt.Errorf("%w: unknown source %q (valid options: env, file, vault, s3)", ErrConfig, value)
	}
	return source, nil
}

// Valid reports whether s is one of the four known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceEnv, SourceFile, SourceVault, SourceS3:
		return true
	default:
		return false
	}
}

// SupportsFallback reports whether descriptors of this source may declare a fallback.
func (s Source) SupportsFallback() bool {
	return s == SourceS3 || s == SourceVault
}

// SecretDescriptor declares one secret to resolve.
type SecretDescriptor struct {
	// Name is the target identifier, e.g. API_KEY.
	Name string
	// Source is the primary source.
	Source Source
	// Required secrets fail the resolution call when unresolved.
	Required bool
	// Fallback is tried when an S3 or Vault primary fails with a retryable error.
	Fallback *Source

	// FromFile is read as the lowest priority env value.
	FromFile string

	// Path is the local file backing a file secret.
	Path string
	// MountPath is where the file is mounted by the consumer.
	MountPath string
	// Permissions is the octal mode for the mounted file.
	Permissions string

	VaultPath  string
	VaultKey   string
	VaultMount string

	S3Path string
}

// WithDefaults fills mount path, permissions and vault mount defaults.
func (d SecretDescriptor) WithDefaults() SecretDescriptor {
	if d.Permissions == "" {
		d.Permissions = DefaultPermissions
	}
	if d.VaultMount == "" {
		d.VaultMount = DefaultVaultMount
	}
	if d.Source == SourceFile && d.MountPath == "" && d.Path != "" {
		d.MountPath = path.Join(DefaultMountDir, path.Base(strings.ReplaceAll(d.Path, `\`, "/")))
	}
	return d
}

// WithSource returns a copy of the descriptor dispatched to another source.
func (d SecretDescriptor) WithSource(source Source) SecretDescriptor {
	d.Source = source
	d.Fallback = nil
	return d
}

// Validate checks the fields required by the descriptor's source.
// Path traversal and file permissions are checked at resolution time.
func (d SecretDescriptor) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, customValidation.SecretName),
		validation.Field(&d.Source, validation.Required,
			validation.In(SourceEnv, SourceFile, SourceVault, SourceS3)),
		validation.Field(&d.Path, validation.When(d.Source == SourceFile, validation.Required)),
		validation.Field(&d.VaultPath, validation.When(d.Source == SourceVault,
			validation.Required, customValidation.NoWhitespace, customValidation.NoTraversal)),
		validation.Field(&d.VaultKey, validation.When(d.Source == SourceVault,
			validation.Required, customValidation.NoWhitespace)),
		validation.Field(&d.S3Path, validation.When(d.Source == SourceS3,
			validation.Required, customValidation.NoWhitespace, customValidation.NoTraversal)),
	)
	if err != nil {
		return fmt.Errorf("%w: secret %q: %v", ErrConfig, d.Name, err)
	}

	if d.Fallback != nil {
		switch {
		case !d.Source.SupportsFallback():
			return fmt.Errorf("%w: secret %q: fallback is only supported for s3 and vault sources", ErrConfig, d.Name)
		case !d.Fallback.Valid():
			return fmt.Errorf("%w: secret %q: unknown fallback source %q", ErrConfig, d.Name, *d.Fallback)
		case *d.Fallback == d.Source:
			return fmt.Errorf("%w: secret %q: fallback must differ from source", ErrConfig, d.Name)
		}
	}

	return nil
}

// ValidateUniqueNames rejects descriptor lists that declare a name twice.
func ValidateUniqueNames(descriptors []SecretDescriptor) error {
	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("%w: duplicate secret name %q", ErrConfig, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}
