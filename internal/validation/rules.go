// Package validation provides custom validation rules for secret descriptors,
// encrypted records and CLI input.
package validation

import (
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/sindri-dev/secrets/internal/errors"
)

var (
	// secretNameRegex matches uppercase identifiers such as API_KEY or DB_PASSWORD_2.
	secretNameRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

	// octalPermissionsRegex matches a four character octal mode such as 0600.
	octalPermissionsRegex = regexp.MustCompile(`^0[0-7]{3}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// SecretName validates that a secret name is an uppercase identifier with underscores.
var SecretName = validation.NewStringRuleWithError(
	func(s string) bool {
		return secretNameRegex.MatchString(s)
	},
	validation.NewError("validation_secret_name", "must be uppercase letters, digits and underscores"),
)

// OctalPermissions validates a file mode string such as "0644".
var OctalPermissions = validation.NewStringRuleWithError(
	func(s string) bool {
		return octalPermissionsRegex.MatchString(s)
	},
	validation.NewError("validation_octal_permissions", "must be an octal mode like 0644"),
)

// NoTraversal validates that a path has no ".." component.
var NoTraversal = validation.NewStringRuleWithError(
	func(s string) bool {
		return !HasTraversal(s)
	},
	validation.NewError("validation_no_traversal", "must not contain '..' components"),
)

// NoWhitespace rejects S3 paths, Vault paths and Vault keys with leading or trailing whitespace.
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// HasTraversal reports whether any slash or OS separator delimited component of p is "..".
func HasTraversal(p string) bool {
	normalized := strings.ReplaceAll(p, string(filepath.Separator), "/")
	normalized = strings.ReplaceAll(normalized, `\`, "/")
	for _, part := range strings.Split(normalized, "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
