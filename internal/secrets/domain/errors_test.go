package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/errors"
)

func TestAggregateError(t *testing.T) {
	aggregate := &AggregateError{Failures: []*ResolutionError{
		{Name: "API_KEY", Sources: []Source{SourceEnv}, Required: true, Err: ErrSecretNotFound},
		{Name: "DB_PASSWORD", Sources: []Source{SourceS3, SourceEnv}, Required: true, Err: ErrUnavailable},
	}}

	assert.Equal(t,
		"secret resolution failed:\n"+
			"  - required secret 'API_KEY' could not be resolved from [env]: secret not found: not found\n"+
			"  - required secret 'DB_PASSWORD' could not be resolved from [s3, env]: backend unavailable: unavailable",
		aggregate.Error(),
	)
	assert.Equal(t, []string{"API_KEY", "DB_PASSWORD"}, aggregate.Names())

	var err error = aggregate
	assert.ErrorIs(t, err, ErrRequiredSecretMissing)
	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrOptionalSecretMissing)

	var resolutionErr *ResolutionError
	require.ErrorAs(t, err, &resolutionErr)
	assert.Equal(t, "API_KEY", resolutionErr.Name)
}

func TestResolutionError_OptionalKind(t *testing.T) {
	err := &ResolutionError{Name: "OPTIONAL", Sources: []Source{SourceVault}, Err: ErrAuthentication}

	assert.ErrorIs(t, err, ErrOptionalSecretMissing)
	assert.NotErrorIs(t, err, ErrRequiredSecretMissing)
	assert.Contains(t, err.Error(), "optional secret 'OPTIONAL'")
}

func TestIsFallbackEligible(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "not found", err: ErrSecretNotFound, want: true},
		{name: "authentication", err: fmt.Errorf("vault: %w", ErrAuthentication), want: true},
		{name: "unavailable", err: ErrUnavailable, want: true},
		{name: "timeout", err: ErrTimeout, want: true},
		{name: "master key missing", err: cryptoDomain.ErrMasterKeyNotFound, want: true},
		{name: "tampered record", err: fmt.Errorf("s3: %w", cryptoDomain.ErrDecryptionFailed), want: false},
		{name: "config", err: ErrConfig, want: false},
		{name: "permission", err: ErrPermission, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFallbackEligible(tt.err))
		})
	}
}
