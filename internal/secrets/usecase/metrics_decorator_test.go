package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/metrics"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
	secretsUsecaseMocks "github.com/sindri-dev/secrets/internal/secrets/usecase/mocks"
)

// mockOperationMetrics is a mock implementation of metrics.OperationMetrics for testing.
type mockOperationMetrics struct {
	mock.Mock
}

func (m *mockOperationMetrics) RecordOperation(
	ctx context.Context,
	component, operation, status string,
	duration time.Duration,
) {
	m.Called(ctx, component, operation, status, duration)
}

func (m *mockOperationMetrics) RecordSecrets(ctx context.Context, component, operation, outcome string, count int) {
	m.Called(ctx, component, operation, outcome, count)
}

var _ metrics.OperationMetrics = (*mockOperationMetrics)(nil)

func expectOperation(m *mockOperationMetrics, ctx context.Context, component, operation, status string) {
	m.On("RecordOperation", ctx, component, operation, status, mock.AnythingOfType("time.Duration")).
		Return().
		Once()
}

func expectSecrets(m *mockOperationMetrics, ctx context.Context, component, operation, outcome string, count int) {
	m.On("RecordSecrets", ctx, component, operation, outcome, count).Return().Once()
}

func TestNewUseCasesWithMetrics(t *testing.T) {
	t.Parallel()

	mockMetrics := &mockOperationMetrics{}

	resolver := NewResolverUseCaseWithMetrics(secretsUsecaseMocks.NewMockResolverUseCase(t), mockMetrics)
	store := NewStoreUseCaseWithMetrics(secretsUsecaseMocks.NewMockStoreUseCase(t), mockMetrics)
	rotation := NewRotationUseCaseWithMetrics(secretsUsecaseMocks.NewMockRotationUseCase(t), mockMetrics)

	assert.Implements(t, (*ResolverUseCase)(nil), resolver)
	assert.Implements(t, (*StoreUseCase)(nil), store)
	assert.Implements(t, (*RotationUseCase)(nil), rotation)
}

func TestOperationStatus(t *testing.T) {
	aggErr := &secretsDomain.AggregateError{Failures: []*secretsDomain.ResolutionError{{Name: "A"}}}

	assert.Equal(t, metrics.StatusSuccess, operationStatus(nil))
	assert.Equal(t, metrics.StatusPartial, operationStatus(aggErr))
	assert.Equal(t, metrics.StatusPartial, operationStatus(secretsDomain.ErrRotationIncomplete))
	assert.Equal(t, metrics.StatusError, operationStatus(secretsDomain.ErrUnavailable))
}

func TestResolverMetricsDecorator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	envFallback := secretsDomain.SourceEnv
	descriptors := []secretsDomain.SecretDescriptor{
		{Name: "API_KEY", Source: secretsDomain.SourceEnv},
		{Name: "DB_PASSWORD", Source: secretsDomain.SourceS3, S3Path: "prod/db", Fallback: &envFallback},
		{Name: "TOKEN", Source: secretsDomain.SourceS3, S3Path: "prod/token"},
	}
	rctx := secretsDomain.NewResolutionContext(".")

	t.Run("ResolveAll_CountsFallbackAndCache", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockResolverUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		resolved := secretsDomain.Secrets{
			"API_KEY":     secretsDomain.NewSecretValue([]byte("a"), secretsDomain.FromShellEnv),
			"DB_PASSWORD": secretsDomain.NewSecretValue([]byte("b"), secretsDomain.FromEnvFile),
			"TOKEN":       secretsDomain.NewSecretValue([]byte("c"), secretsDomain.FromS3Cache),
		}

		mockUseCase.EXPECT().ResolveAll(ctx, descriptors, rctx).Return(resolved, nil).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.StatusSuccess)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.OutcomeResolved, 3)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.OutcomeFallback, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.OutcomeCached, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.OutcomeFailed, 0)

		decorator := NewResolverUseCaseWithMetrics(mockUseCase, mockMetrics)
		secrets, err := decorator.ResolveAll(ctx, descriptors, rctx)

		require.NoError(t, err)
		assert.Equal(t, resolved, secrets)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("ResolveAll_AggregateError_IsPartial", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockResolverUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		aggErr := &secretsDomain.AggregateError{Failures: []*secretsDomain.ResolutionError{
			{Name: "API_KEY", Required: true, Err: secretsDomain.ErrSecretNotFound},
			{Name: "TOKEN", Required: true, Err: secretsDomain.ErrUnavailable},
		}}

		mockUseCase.EXPECT().ResolveAll(ctx, descriptors, rctx).Return(nil, aggErr).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.StatusPartial)
		mockMetrics.On("RecordSecrets", ctx, metrics.ComponentResolver, "resolve_all",
			mock.Anything, 0).Return().Times(3)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "resolve_all", metrics.OutcomeFailed, 2)

		decorator := NewResolverUseCaseWithMetrics(mockUseCase, mockMetrics)
		_, err := decorator.ResolveAll(ctx, descriptors, rctx)

		assert.ErrorIs(t, err, secretsDomain.ErrRequiredSecretMissing)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Validate_ReturnsReportOnError", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockResolverUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		report := &secretsDomain.ValidationReport{Entries: []secretsDomain.ValidationEntry{
			{Name: "API_KEY", OK: true},
			{Name: "TOKEN", Required: true},
		}}
		validationErr := errors.New("validation failed")

		mockUseCase.EXPECT().Validate(ctx, descriptors, rctx).Return(report, validationErr).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentResolver, "validate", metrics.StatusError)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "validate", metrics.OutcomeResolved, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentResolver, "validate", metrics.OutcomeFailed, 1)

		decorator := NewResolverUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Validate(ctx, descriptors, rctx)

		assert.Same(t, report, got)
		assert.Equal(t, validationErr, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestStoreMetricsDecorator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storeErr := errors.New("s3 unreachable")

	tests := []struct {
		name      string
		operation string
		setup     func(m *secretsUsecaseMocks.MockStoreUseCase, err error)
		call      func(uc StoreUseCase) error
	}{
		{
			name:      "Push",
			operation: "push",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().Push(ctx, mock.Anything).Return("v1", err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.Push(ctx, secretsDomain.PushInput{Name: "DB", S3Path: "prod/db"})
				return err
			},
		},
		{
			name:      "Pull",
			operation: "pull",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().Pull(ctx, "prod/db").Return(nil, err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.Pull(ctx, "prod/db")
				return err
			},
		},
		{
			name:      "List",
			operation: "list",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().List(ctx, "prod/**").Return(nil, err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.List(ctx, "prod/**")
				return err
			},
		},
		{
			name:      "Delete",
			operation: "delete",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().Delete(ctx, "prod/db").Return(err).Once()
			},
			call: func(uc StoreUseCase) error {
				return uc.Delete(ctx, "prod/db")
			},
		},
		{
			name:      "History",
			operation: "history",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().History(ctx, "prod/db").Return(nil, err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.History(ctx, "prod/db")
				return err
			},
		},
		{
			name:      "Rollback",
			operation: "rollback",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().Rollback(ctx, "prod/db", "v1").Return("v3", err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.Rollback(ctx, "prod/db", "v1")
				return err
			},
		},
		{
			name:      "SyncStatus",
			operation: "sync_status",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().SyncStatus(ctx, mock.Anything).Return(nil, err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.SyncStatus(ctx, nil)
				return err
			},
		},
		{
			name:      "Sync",
			operation: "sync",
			setup: func(m *secretsUsecaseMocks.MockStoreUseCase, err error) {
				m.EXPECT().Sync(ctx, mock.Anything).Return(nil, err).Once()
			},
			call: func(uc StoreUseCase) error {
				_, err := uc.Sync(ctx, secretsDomain.SyncInput{})
				return err
			},
		},
	}

	for _, tt := range tests {
		for _, status := range []string{metrics.StatusSuccess, metrics.StatusError} {
			t.Run(tt.name+"_"+status, func(t *testing.T) {
				t.Parallel()
				mockUseCase := secretsUsecaseMocks.NewMockStoreUseCase(t)
				mockMetrics := &mockOperationMetrics{}

				var err error
				if status == metrics.StatusError {
					err = storeErr
				}
				tt.setup(mockUseCase, err)
				expectOperation(mockMetrics, ctx, metrics.ComponentStore, tt.operation, status)
				mockMetrics.On("RecordSecrets", ctx, metrics.ComponentStore, tt.operation, mock.Anything, mock.Anything).
					Return().
					Maybe()

				got := tt.call(NewStoreUseCaseWithMetrics(mockUseCase, mockMetrics))
				assert.Equal(t, err, got)
				mockMetrics.AssertExpectations(t)
			})
		}
	}

	t.Run("Pull_CacheHitCountsCached", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockStoreUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		value := secretsDomain.NewSecretValue([]byte("v"), secretsDomain.FromS3Cache)

		mockUseCase.EXPECT().Pull(ctx, "prod/db").Return(value, nil).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentStore, "pull", metrics.StatusSuccess)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "pull", metrics.OutcomeCached, 1)

		got, err := NewStoreUseCaseWithMetrics(mockUseCase, mockMetrics).Pull(ctx, "prod/db")
		require.NoError(t, err)
		assert.Same(t, value, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Sync_FailuresArePartial", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockStoreUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		result := &secretsDomain.SyncResult{
			Pushed:    []string{"prod/a", "prod/b"},
			Pulled:    []string{"prod/c"},
			Conflicts: []string{"prod/d"},
			Failed:    []secretsDomain.SyncFailure{{Path: "prod/e", Reason: "denied"}},
		}

		mockUseCase.EXPECT().Sync(ctx, mock.Anything).Return(result, nil).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.StatusPartial)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.OutcomePushed, 2)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.OutcomePulled, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.OutcomeDeleted, 0)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.OutcomeConflict, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentStore, "sync", metrics.OutcomeFailed, 1)

		_, err := NewStoreUseCaseWithMetrics(mockUseCase, mockMetrics).Sync(ctx, secretsDomain.SyncInput{})
		require.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestRotationMetricsDecorator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	oldKey, err := cryptoDomain.GenerateMasterKey()
	require.NoError(t, err)
	newKey, err := cryptoDomain.GenerateMasterKey()
	require.NoError(t, err)

	t.Run("AddRecipient_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockRotationUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		result := secretsDomain.NewRotationResult(secretsDomain.KeyStateDualActive)
		result.Rotated = []string{"prod/a", "prod/b"}

		mockUseCase.EXPECT().AddRecipient(ctx, oldKey, newKey.PublicKey(), newKey).Return(result, nil).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentRotation, "add_recipient", metrics.StatusSuccess)
		expectSecrets(mockMetrics, ctx, metrics.ComponentRotation, "add_recipient", metrics.OutcomeRotated, 2)
		expectSecrets(mockMetrics, ctx, metrics.ComponentRotation, "add_recipient", metrics.OutcomeFailed, 0)

		decorator := NewRotationUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.AddRecipient(ctx, oldKey, newKey.PublicKey(), newKey)

		require.NoError(t, err)
		assert.Same(t, result, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Rotate_IncompleteIsPartial", func(t *testing.T) {
		t.Parallel()
		mockUseCase := secretsUsecaseMocks.NewMockRotationUseCase(t)
		mockMetrics := &mockOperationMetrics{}
		result := secretsDomain.NewRotationResult(secretsDomain.KeyStateDualActive)
		result.Rotated = []string{"prod/a"}
		result.Failed["prod/b"] = cryptoDomain.ErrDecryptionFailed

		mockUseCase.EXPECT().Rotate(ctx, oldKey, newKey).Return(result, secretsDomain.ErrRotationIncomplete).Once()
		expectOperation(mockMetrics, ctx, metrics.ComponentRotation, "rotate", metrics.StatusPartial)
		expectSecrets(mockMetrics, ctx, metrics.ComponentRotation, "rotate", metrics.OutcomeRotated, 1)
		expectSecrets(mockMetrics, ctx, metrics.ComponentRotation, "rotate", metrics.OutcomeFailed, 1)

		decorator := NewRotationUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Rotate(ctx, oldKey, newKey)

		assert.ErrorIs(t, err, secretsDomain.ErrRotationIncomplete)
		assert.Same(t, result, got)
		mockMetrics.AssertExpectations(t)
	})
}

// mockSourceMetrics is a mock implementation of metrics.SourceMetrics for testing.
type mockSourceMetrics struct {
	mock.Mock
}

func (m *mockSourceMetrics) RecordLookup(
	ctx context.Context,
	source, resolvedFrom, status string,
	duration time.Duration,
) {
	m.Called(ctx, source, resolvedFrom, status, duration)
}

var _ metrics.SourceMetrics = (*mockSourceMetrics)(nil)

func TestSourceMetricsDecorator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	descriptor := secretsDomain.SecretDescriptor{Name: "DB", Source: secretsDomain.SourceS3, S3Path: "prod/db"}
	rctx := secretsDomain.NewResolutionContext(".")

	tests := []struct {
		name         string
		value        *secretsDomain.SecretValue
		err          error
		resolvedFrom string
		status       string
	}{
		{
			name:         "cache hit",
			value:        secretsDomain.NewSecretValue([]byte("v"), secretsDomain.FromS3Cache),
			resolvedFrom: "s3_cache",
			status:       "success",
		},
		{name: "not found", err: secretsDomain.ErrSecretNotFound, status: "not_found"},
		{name: "timeout", err: secretsDomain.ErrTimeout, status: "timeout"},
		{name: "unavailable", err: secretsDomain.ErrUnavailable, status: "unavailable"},
		{name: "tampered", err: cryptoDomain.ErrDecryptionFailed, status: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next := secretsUsecaseMocks.NewMockSource(t)
			mockMetrics := &mockSourceMetrics{}

			next.EXPECT().Resolve(ctx, descriptor, rctx).Return(tt.value, tt.err).Once()
			mockMetrics.On("RecordLookup", ctx, "s3", tt.resolvedFrom, tt.status,
				mock.AnythingOfType("time.Duration")).Return().Once()

			decorated := NewSourceWithMetrics(secretsDomain.SourceS3, next, mockMetrics)
			value, err := decorated.Resolve(ctx, descriptor, rctx)

			assert.Equal(t, tt.err, err)
			assert.Same(t, tt.value, value)
			mockMetrics.AssertExpectations(t)
		})
	}
}
