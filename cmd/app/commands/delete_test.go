package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	"github.com/sindri-dev/secrets/internal/secrets/usecase/mocks"
)

func TestRunDelete(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("yes-skips-prompt", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Delete(ctx, "prod/db").Return(nil)

		tuple, out, _ := newTuple("")
		err := RunDelete(ctx, mockUseCase, logger, tuple, "DB_PASSWORD", "prod/db", true)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "[y/N]")
		assert.Contains(t, out.String(), "Secret 'DB_PASSWORD' deleted")
	})

	t.Run("confirmed", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Delete(ctx, "DB_PASSWORD").Return(nil)

		tuple, out, _ := newTuple("yes\n")
		err := RunDelete(ctx, mockUseCase, logger, tuple, "DB_PASSWORD", "", false)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Delete secret DB_PASSWORD? [y/N]: ")
	})

	t.Run("declined", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)

		tuple, out, _ := newTuple("\n")
		err := RunDelete(ctx, mockUseCase, logger, tuple, "DB_PASSWORD", "", false)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Delete cancelled")
	})

	t.Run("error", func(t *testing.T) {
		mockUseCase := mocks.NewMockStoreUseCase(t)
		mockUseCase.EXPECT().Delete(ctx, "DB_PASSWORD").Return(secretsDomain.ErrPermission)

		tuple, _, _ := newTuple("")
		err := RunDelete(ctx, mockUseCase, logger, tuple, "DB_PASSWORD", "", true)
		require.ErrorIs(t, err, secretsDomain.ErrPermission)
	})
}
