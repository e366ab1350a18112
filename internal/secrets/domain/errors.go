package domain

import (
	"fmt"
	"strings"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/errors"
)

// Secret resolution error taxonomy.
var (
	// ErrConfig indicates a malformed descriptor, manifest or env file.
	ErrConfig = errors.Wrap(errors.ErrInvalidInput, "configuration error")

	// ErrSecretNotFound indicates the secret is absent at its source.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrAuthentication indicates Vault or S3 rejected the configured credentials.
	// Tag mismatches on decrypt are reported as cryptoDomain.ErrDecryptionFailed,
	// which is also an authentication failure but never eligible for fallback.
	ErrAuthentication = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrPermission indicates an invalid file path or permission mode.
	ErrPermission = errors.Wrap(errors.ErrForbidden, "permission denied")

	// ErrTimeout indicates the resolution deadline expired before the secret resolved.
	ErrTimeout = errors.Wrap(errors.ErrTimeout, "resolution deadline exceeded")

	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.Wrap(errors.ErrUnavailable, "backend unavailable")

	// ErrRequiredSecretMissing marks a required secret that failed every attempted source.
	ErrRequiredSecretMissing = errors.New("required secret missing")

	// ErrOptionalSecretMissing marks an optional secret that failed every attempted source.
	ErrOptionalSecretMissing = errors.New("optional secret missing")

	// ErrSecretExists indicates push would overwrite an existing secret without force.
	ErrSecretExists = errors.Wrap(errors.ErrConflict, "secret already exists")
)

// ResolutionError records a secret that could not be resolved from any attempted source.
// It unwraps to both its kind (required or optional missing) and the last cause.
type ResolutionError struct {
	Name     string
	Sources  []Source
	Required bool
	Err      error
}

// Error implements error.
func (e *ResolutionError) Error() string {
	kind := "optional"
	if e.Required {
		kind = "required"
	}
	return fmt.Sprintf("%s secret '%s' could not be resolved from [%s]: %v",
		kind, e.Name, joinSources(e.Sources), e.Err)
}

// Unwrap exposes the missing kind and the cause.
func (e *ResolutionError) Unwrap() []error {
	kind := ErrOptionalSecretMissing
	if e.Required {
		kind = ErrRequiredSecretMissing
	}
	return []error{kind, e.Err}
}

// AggregateError collects every failed secret of a resolution call.
type AggregateError struct {
	Failures []*ResolutionError
}

// Error renders one line per failed secret.
func (e *AggregateError) Error() string {
	var b strings.Builder
	b.WriteString("secret resolution failed:")
	for _, failure := range e.Failures {
		b.WriteString("\n  - ")
		b.WriteString(failure.Error())
	}
	return b.String()
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, failure := range e.Failures {
		errs = append(errs, failure)
	}
	return errs
}

// Names returns the failed secret names in report order.
func (e *AggregateError) Names() []string {
	names := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		names = append(names, failure.Name)
	}
	return names
}

// IsFallbackEligible reports whether a primary failure may be retried against a fallback.
// Network, authentication, not-found and timeout failures qualify. Tampered records,
// configuration errors and permission errors never do.
func IsFallbackEligible(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, cryptoDomain.ErrDecryptionFailed) || errors.Is(err, ErrConfig) {
		return false
	}
	return errors.Is(err, errors.ErrNotFound) ||
		errors.Is(err, errors.ErrUnauthorized) ||
		errors.Is(err, errors.ErrUnavailable) ||
		errors.Is(err, errors.ErrTimeout)
}

func joinSources(sources []Source) string {
	parts := make([]string, 0, len(sources))
	for _, source := range sources {
		parts = append(parts, string(source))
	}
	return strings.Join(parts, ", ")
}
