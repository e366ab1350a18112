package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/sindri-dev/secrets/internal/errors"
)

func TestSecretName(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "simple", value: "API_KEY", shouldErr: false},
		{name: "with digits", value: "DB_PASSWORD_2", shouldErr: false},
		{name: "single letter", value: "X", shouldErr: false},
		{name: "lowercase", value: "api_key", shouldErr: true},
		{name: "leading digit", value: "1API", shouldErr: true},
		{name: "dash", value: "API-KEY", shouldErr: true},
		{name: "leading underscore", value: "_API", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, SecretName)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOctalPermissions(t *testing.T) {
	tests := []struct {
		value     string
		shouldErr bool
	}{
		{value: "0644", shouldErr: false},
		{value: "0600", shouldErr: false},
		{value: "0777", shouldErr: false},
		{value: "644", shouldErr: true},
		{value: "0888", shouldErr: true},
		{value: "00644", shouldErr: true},
		{value: "rw-r--r--", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validation.Validate(tt.value, OctalPermissions)
			assert.Equal(t, tt.shouldErr, err != nil)
		})
	}
}

func TestHasTraversal(t *testing.T) {
	assert.True(t, HasTraversal("../etc/passwd"))
	assert.True(t, HasTraversal("certs/../../etc/passwd"))
	assert.True(t, HasTraversal(`certs\..\key.pem`))
	assert.False(t, HasTraversal("certs/tls.crt"))
	assert.False(t, HasTraversal("/etc/ssl/..pem"))
	assert.False(t, HasTraversal("certs/.hidden"))

	assert.Error(t, validation.Validate("a/../b", NoTraversal))
	assert.NoError(t, validation.Validate("a/b", NoTraversal))
}

func TestNotBlankAndNoWhitespace(t *testing.T) {
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.NoError(t, validation.Validate("value", NotBlank))
	assert.Error(t, validation.Validate(" value", NoWhitespace))
	assert.NoError(t, validation.Validate("value", NoWhitespace))
}

func TestBase64OfLength(t *testing.T) {
	assert.NoError(t, validation.Validate("AAAAAAAAAAAAAAAA", Base64OfLength(12)))
	assert.Error(t, validation.Validate("AAAA", Base64OfLength(12)))
	assert.Error(t, validation.Validate("not base64!", Base64OfLength(12)))
	assert.NoError(t, validation.Validate("", Base64OfLength(12)))
	assert.Error(t, validation.Validate("@@@", Base64))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("name: must not be blank"))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "name: must not be blank")
}
