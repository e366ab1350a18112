package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	"github.com/sindri-dev/secrets/internal/secrets/usecase/mocks"
	"github.com/sindri-dev/secrets/internal/testutil"
)

func pushInput(name, path, value string, force bool) interface{} {
	return mock.MatchedBy(func(input secretsDomain.PushInput) bool {
		return input.Name == name &&
			input.S3Path == path &&
			string(input.Value) == value &&
			input.Force == force
	})
}

func TestRunPush(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("value-flag", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Push(ctx, pushInput("API_KEY", "API_KEY", "s3cr3t", false)).Return("v1", nil)

		tuple, out, _ := newTuple("")
		err := RunPush(ctx, mockUseCase, logger, tuple, "API_KEY", PushOptions{Value: "s3cr3t"})

		require.NoError(t, err)
		require.Contains(t, out.String(), "Secret 'API_KEY' pushed to API_KEY (6 bytes, version v1)")
		require.NotContains(t, out.String(), "s3cr3t")
	})

	t.Run("stdin-trimmed", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Push(ctx, pushInput("DB_PASSWORD", "prod/db", "hunter2", true)).Return("v2", nil)

		tuple, out, _ := newTuple("  hunter2\n")
		err := RunPush(ctx, mockUseCase, logger, tuple, "DB_PASSWORD", PushOptions{
			Stdin:  true,
			Value:  "ignored",
			S3Path: "prod/db",
			Force:  true,
		})

		require.NoError(t, err)
		require.Contains(t, out.String(), "pushed to prod/db")
	})

	t.Run("from-file-with-recipients", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "cert.pem", "CERTIFICATE\n", 0o600)
		recipient := testutil.NewMasterKey(t).PublicKey()

		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().
			Push(ctx, mock.MatchedBy(func(input secretsDomain.PushInput) bool {
				return string(input.Value) == "CERTIFICATE" &&
					len(input.Recipients) == 1 && input.Recipients[0] == recipient &&
					input.Description == "tls cert"
			})).
			Return("v3", nil)

		tuple, _, _ := newTuple("")
		err := RunPush(ctx, mockUseCase, logger, tuple, "TLS_CERT", PushOptions{
			FromFile:    path,
			Recipients:  []string{recipient},
			Description: "tls cert",
		})

		require.NoError(t, err)
	})

	t.Run("missing-value", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		tuple, _, _ := newTuple("")

		err := RunPush(ctx, mockUseCase, logger, tuple, "API_KEY", PushOptions{})

		require.Error(t, err)
		require.Contains(t, err.Error(), "a value is required")
	})

	t.Run("empty-value", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		tuple, _, _ := newTuple(" \n")

		err := RunPush(ctx, mockUseCase, logger, tuple, "API_KEY", PushOptions{Stdin: true})

		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("missing-file", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		tuple, _, _ := newTuple("")

		err := RunPush(ctx, mockUseCase, logger, tuple, "API_KEY", PushOptions{
			FromFile: filepath.Join(t.TempDir(), "missing"),
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Push(ctx, mock.Anything).Return("", secretsDomain.ErrSecretExists)

		tuple, _, _ := newTuple("")
		err := RunPush(ctx, mockUseCase, logger, tuple, "API_KEY", PushOptions{Value: "s3cr3t"})

		require.Error(t, err)
		require.True(t, errors.Is(err, secretsDomain.ErrSecretExists))
	})
}
