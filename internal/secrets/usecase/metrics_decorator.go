package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/errors"
	"github.com/sindri-dev/secrets/internal/metrics"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// operationStatus maps a use case error to success, partial or error. Aggregate resolution
// failures and incomplete rotations are partial: the call handled some secrets.
func operationStatus(err error) string {
	var aggErr *secretsDomain.AggregateError
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.As(err, &aggErr), errors.Is(err, secretsDomain.ErrRotationIncomplete):
		return metrics.StatusPartial
	default:
		return metrics.StatusError
	}
}

// failedCount returns the number of secrets an aggregate error reports.
func failedCount(err error) int {
	var aggErr *secretsDomain.AggregateError
	if errors.As(err, &aggErr) {
		return len(aggErr.Failures)
	}
	return 0
}

// resolverUseCaseWithMetrics decorates ResolverUseCase with metrics instrumentation.
type resolverUseCaseWithMetrics struct {
	next    ResolverUseCase
	metrics metrics.OperationMetrics
}

// NewResolverUseCaseWithMetrics wraps a ResolverUseCase with metrics recording.
func NewResolverUseCaseWithMetrics(useCase ResolverUseCase, m metrics.OperationMetrics) ResolverUseCase {
	return &resolverUseCaseWithMetrics{next: useCase, metrics: m}
}

// ResolveAll records the call and counts resolved, fallback, cached and failed secrets.
func (r *resolverUseCaseWithMetrics) ResolveAll(
	ctx context.Context,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (secretsDomain.Secrets, error) {
	const operation = "resolve_all"
	start := time.Now()
	secrets, err := r.next.ResolveAll(ctx, descriptors, rctx)
	r.metrics.RecordOperation(ctx, metrics.ComponentResolver, operation, operationStatus(err), time.Since(start))

	var fallback, cached int
	for _, d := range descriptors {
		value, ok := secrets[d.Name]
		if !ok {
			continue
		}
		if value.ResolvedFrom().Source() != d.Source {
			fallback++
		}
		if value.ResolvedFrom() == secretsDomain.FromS3Cache {
			cached++
		}
	}
	r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeResolved, len(secrets))
	r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeFallback, fallback)
	r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeCached, cached)
	r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeFailed, failedCount(err))
	return secrets, err
}

// Validate records the call and counts resolved and failed entries of the report.
func (r *resolverUseCaseWithMetrics) Validate(
	ctx context.Context,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.ValidationReport, error) {
	const operation = "validate"
	start := time.Now()
	report, err := r.next.Validate(ctx, descriptors, rctx)
	r.metrics.RecordOperation(ctx, metrics.ComponentResolver, operation, operationStatus(err), time.Since(start))

	if report != nil {
		failed := len(report.Failed())
		r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeResolved,
			len(report.Entries)-failed)
		r.metrics.RecordSecrets(ctx, metrics.ComponentResolver, operation, metrics.OutcomeFailed, failed)
	}
	return report, err
}

// storeUseCaseWithMetrics decorates StoreUseCase with metrics instrumentation.
type storeUseCaseWithMetrics struct {
	next    StoreUseCase
	metrics metrics.OperationMetrics
}

// NewStoreUseCaseWithMetrics wraps a StoreUseCase with metrics recording.
func NewStoreUseCaseWithMetrics(useCase StoreUseCase, m metrics.OperationMetrics) StoreUseCase {
	return &storeUseCaseWithMetrics{next: useCase, metrics: m}
}

func (s *storeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	s.metrics.RecordOperation(ctx, metrics.ComponentStore, operation, operationStatus(err), time.Since(start))
}

// Push records metrics for push operations.
func (s *storeUseCaseWithMetrics) Push(ctx context.Context, input secretsDomain.PushInput) (string, error) {
	start := time.Now()
	versionID, err := s.next.Push(ctx, input)
	s.record(ctx, "push", start, err)
	if err == nil {
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, "push", metrics.OutcomePushed, 1)
	}
	return versionID, err
}

// Pull records metrics for pull operations and whether the cache served the value.
func (s *storeUseCaseWithMetrics) Pull(ctx context.Context, path string) (*secretsDomain.SecretValue, error) {
	start := time.Now()
	value, err := s.next.Pull(ctx, path)
	s.record(ctx, "pull", start, err)
	if value != nil {
		outcome := metrics.OutcomePulled
		if value.ResolvedFrom() == secretsDomain.FromS3Cache {
			outcome = metrics.OutcomeCached
		}
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, "pull", outcome, 1)
	}
	return value, err
}

// List records metrics for list operations.
func (s *storeUseCaseWithMetrics) List(ctx context.Context, pattern string) ([]string, error) {
	start := time.Now()
	paths, err := s.next.List(ctx, pattern)
	s.record(ctx, "list", start, err)
	return paths, err
}

// Delete records metrics for delete operations.
func (s *storeUseCaseWithMetrics) Delete(ctx context.Context, path string) error {
	start := time.Now()
	err := s.next.Delete(ctx, path)
	s.record(ctx, "delete", start, err)
	if err == nil {
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, "delete", metrics.OutcomeDeleted, 1)
	}
	return err
}

// History records metrics for history lookups.
func (s *storeUseCaseWithMetrics) History(ctx context.Context, path string) ([]secretsDomain.SecretVersion, error) {
	start := time.Now()
	versions, err := s.next.History(ctx, path)
	s.record(ctx, "history", start, err)
	return versions, err
}

// Rollback records metrics for rollback operations.
func (s *storeUseCaseWithMetrics) Rollback(ctx context.Context, path, versionID string) (string, error) {
	start := time.Now()
	newVersionID, err := s.next.Rollback(ctx, path, versionID)
	s.record(ctx, "rollback", start, err)
	return newVersionID, err
}

// SyncStatus records metrics for sync status computations, counting conflicts.
func (s *storeUseCaseWithMetrics) SyncStatus(
	ctx context.Context,
	locals []secretsDomain.LocalSecret,
) (*secretsDomain.SyncResult, error) {
	start := time.Now()
	result, err := s.next.SyncStatus(ctx, locals)
	s.record(ctx, "sync_status", start, err)
	if result != nil {
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, "sync_status", metrics.OutcomeConflict,
			len(result.Conflicts))
	}
	return result, err
}

// Sync records metrics for sync runs and counts what the run changed. A run with
// per-path failures is partial.
func (s *storeUseCaseWithMetrics) Sync(
	ctx context.Context,
	input secretsDomain.SyncInput,
) (*secretsDomain.SyncResult, error) {
	const operation = "sync"
	start := time.Now()
	result, err := s.next.Sync(ctx, input)

	status := operationStatus(err)
	if err == nil && result != nil && len(result.Failed) > 0 {
		status = metrics.StatusPartial
	}
	s.metrics.RecordOperation(ctx, metrics.ComponentStore, operation, status, time.Since(start))

	if result != nil {
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, operation, metrics.OutcomePushed, len(result.Pushed))
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, operation, metrics.OutcomePulled, len(result.Pulled))
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, operation, metrics.OutcomeDeleted, len(result.Deleted))
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, operation, metrics.OutcomeConflict, len(result.Conflicts))
		s.metrics.RecordSecrets(ctx, metrics.ComponentStore, operation, metrics.OutcomeFailed, len(result.Failed))
	}
	return result, err
}

// rotationUseCaseWithMetrics decorates RotationUseCase with metrics instrumentation.
type rotationUseCaseWithMetrics struct {
	next    RotationUseCase
	metrics metrics.OperationMetrics
}

// NewRotationUseCaseWithMetrics wraps a RotationUseCase with metrics recording.
func NewRotationUseCaseWithMetrics(useCase RotationUseCase, m metrics.OperationMetrics) RotationUseCase {
	return &rotationUseCaseWithMetrics{next: useCase, metrics: m}
}

func (r *rotationUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	result *secretsDomain.RotationResult,
	err error,
) {
	r.metrics.RecordOperation(ctx, metrics.ComponentRotation, operation, operationStatus(err), time.Since(start))
	if result != nil {
		r.metrics.RecordSecrets(ctx, metrics.ComponentRotation, operation, metrics.OutcomeRotated, len(result.Rotated))
		r.metrics.RecordSecrets(ctx, metrics.ComponentRotation, operation, metrics.OutcomeFailed, len(result.Failed))
	}
}

// AddRecipient records metrics for add-only rotations.
func (r *rotationUseCaseWithMetrics) AddRecipient(
	ctx context.Context,
	oldKey *cryptoDomain.MasterKey,
	recipient string,
	verifyWith *cryptoDomain.MasterKey,
) (*secretsDomain.RotationResult, error) {
	start := time.Now()
	result, err := r.next.AddRecipient(ctx, oldKey, recipient, verifyWith)
	r.record(ctx, "add_recipient", start, result, err)
	return result, err
}

// Rotate records metrics for full rotations.
func (r *rotationUseCaseWithMetrics) Rotate(
	ctx context.Context,
	oldKey, newKey *cryptoDomain.MasterKey,
) (*secretsDomain.RotationResult, error) {
	start := time.Now()
	result, err := r.next.Rotate(ctx, oldKey, newKey)
	r.record(ctx, "rotate", start, result, err)
	return result, err
}

// sourceWithMetrics decorates a Source with per-lookup metrics.
type sourceWithMetrics struct {
	source  secretsDomain.Source
	next    Source
	metrics metrics.SourceMetrics
}

// NewSourceWithMetrics wraps a Source registered as source with lookup recording.
func NewSourceWithMetrics(source secretsDomain.Source, next Source, m metrics.SourceMetrics) Source {
	return &sourceWithMetrics{source: source, next: next, metrics: m}
}

// Resolve records the lookup outcome and the tier that produced the value.
func (s *sourceWithMetrics) Resolve(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	start := time.Now()
	value, err := s.next.Resolve(ctx, descriptor, rctx)

	resolvedFrom := ""
	if value != nil {
		resolvedFrom = string(value.ResolvedFrom())
	}
	s.metrics.RecordLookup(ctx, string(s.source), resolvedFrom, lookupStatus(err), time.Since(start))
	return value, err
}

// lookupStatus buckets a source error into a low-cardinality label.
func lookupStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, secretsDomain.ErrSecretNotFound):
		return "not_found"
	case errors.Is(err, secretsDomain.ErrTimeout):
		return "timeout"
	case errors.Is(err, secretsDomain.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
