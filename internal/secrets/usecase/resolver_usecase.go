package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

const (
	defaultResolveTimeout     = 30 * time.Second
	defaultResolveConcurrency = 8
)

// ResolverConfig tunes concurrency, backend rate limiting and the call deadline.
type ResolverConfig struct {
	Timeout     time.Duration
	Concurrency int
	// RateLimit is the backend dispatch rate per second. Zero or less disables limiting.
	RateLimit float64
	RateBurst int
}

// resolverUseCase implements ResolverUseCase over a set of sources.
type resolverUseCase struct {
	sources map[secretsDomain.Source]Source
	limiter *rate.Limiter
	config  ResolverConfig
	logger  *slog.Logger
}

// outcome is the result of one descriptor's chain.
type outcome struct {
	value        *secretsDomain.SecretValue
	resolvedFrom secretsDomain.ResolvedFrom
	sources      []secretsDomain.Source
	err          error
}

// ResolveAll resolves every descriptor concurrently under a shared deadline.
func (r *resolverUseCase) ResolveAll(
	ctx context.Context,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (secretsDomain.Secrets, error) {
	rctx.ValidationMode = false

	outcomes, logger, err := r.run(ctx, descriptors, rctx)
	if err != nil {
		return nil, err
	}

	secrets := secretsDomain.Secrets{}
	for i, o := range outcomes {
		if o.err == nil {
			secrets[descriptors[i].Name] = o.value
		}
	}

	if aggErr := r.aggregate(logger, descriptors, outcomes, rctx); aggErr != nil {
		secrets.Close()
		return nil, aggErr
	}

	logger.Info("secrets resolved", slog.Int("count", len(secrets)))
	return secrets, nil
}

// Validate runs every chain with values destroyed as soon as they resolve.
func (r *resolverUseCase) Validate(
	ctx context.Context,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.ValidationReport, error) {
	rctx.ValidationMode = true

	outcomes, logger, err := r.run(ctx, descriptors, rctx)
	if err != nil {
		return nil, err
	}

	report := &secretsDomain.ValidationReport{Entries: make([]secretsDomain.ValidationEntry, 0, len(descriptors))}
	for i, o := range outcomes {
		entry := secretsDomain.ValidationEntry{
			Name:         descriptors[i].Name,
			Source:       descriptors[i].Source,
			Required:     descriptors[i].Required,
			ResolvedFrom: o.resolvedFrom,
			OK:           o.err == nil,
		}
		if o.err != nil {
			entry.Error = o.err.Error()
		}
		report.Entries = append(report.Entries, entry)
	}

	if aggErr := r.aggregate(logger, descriptors, outcomes, rctx); aggErr != nil {
		return report, aggErr
	}
	return report, nil
}

// run executes one task per descriptor and returns outcomes in descriptor order.
func (r *resolverUseCase) run(
	ctx context.Context,
	descriptors []secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) ([]outcome, *slog.Logger, error) {
	logger := r.logger.With(slog.String("resolution_id", uuid.Must(uuid.NewV7()).String()))

	if err := secretsDomain.ValidateUniqueNames(descriptors); err != nil {
		return nil, logger, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	logger.Debug("resolving secrets",
		slog.Int("count", len(descriptors)),
		slog.Bool("validation_mode", rctx.ValidationMode),
	)

	outcomes := make([]outcome, len(descriptors))

	// Failures are collected per task and never cancel sibling tasks.
	var g errgroup.Group
	g.SetLimit(r.config.Concurrency)
	for i, descriptor := range descriptors {
		g.Go(func() error {
			outcomes[i] = r.resolveOne(ctx, logger, descriptor, rctx)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, logger, nil
}

// resolveOne runs the primary source and, when eligible, the fallback.
func (r *resolverUseCase) resolveOne(
	ctx context.Context,
	logger *slog.Logger,
	descriptor secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) outcome {
	descriptor = descriptor.WithDefaults()
	result := outcome{sources: []secretsDomain.Source{descriptor.Source}}

	if err := descriptor.Validate(); err != nil {
		result.err = err
		return result
	}

	value, err := r.attempt(ctx, descriptor, rctx)
	if err != nil && descriptor.Fallback != nil && secretsDomain.IsFallbackEligible(err) && ctx.Err() == nil {
		fallback := descriptor.WithSource(*descriptor.Fallback)
		result.sources = append(result.sources, fallback.Source)

		logger.Debug("primary source failed, trying fallback",
			slog.String("name", descriptor.Name),
			slog.String("source", string(descriptor.Source)),
			slog.String("fallback", string(fallback.Source)),
			slog.Any("error", err),
		)

		primaryErr := err
		value, err = r.attempt(ctx, fallback, rctx)
		if err != nil {
			err = fmt.Errorf("%w (primary %s: %v)", err, descriptor.Source, primaryErr)
		}
	}
	if err != nil {
		result.err = err
		return result
	}

	result.resolvedFrom = value.ResolvedFrom()
	logger.Debug("secret resolved",
		slog.String("name", descriptor.Name),
		slog.String("resolved_from", string(result.resolvedFrom)),
	)

	if rctx.ValidationMode {
		value.Destroy()
		return result
	}
	result.value = value
	return result
}

// attempt dispatches a descriptor to its source. Backend sources are rate limited.
func (r *resolverUseCase) attempt(
	ctx context.Context,
	descriptor secretsDomain.SecretDescriptor,
	rctx secretsDomain.ResolutionContext,
) (*secretsDomain.SecretValue, error) {
	source, ok := r.sources[descriptor.Source]
	if !ok || source == nil {
		// An unconfigured remote backend is unreachable from this machine, so a declared
		// fallback still applies. Local sources are always registered.
		if descriptor.Source.SupportsFallback() {
			return nil, fmt.Errorf("%w: %s backend is not configured", secretsDomain.ErrUnavailable, descriptor.Source)
		}
		return nil, fmt.Errorf("%w: %s source is not configured", secretsDomain.ErrConfig, descriptor.Source)
	}

	if descriptor.Source.SupportsFallback() {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
		}
	}

	value, err := source.Resolve(ctx, descriptor, rctx)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, secretsDomain.ErrTimeout) {
			return nil, fmt.Errorf("%w: %v", secretsDomain.ErrTimeout, err)
		}
		return nil, err
	}
	return value, nil
}

// aggregate builds the aggregate error for failed required secrets, and for
// optional secrets when optional failures are not allowed.
func (r *resolverUseCase) aggregate(
	logger *slog.Logger,
	descriptors []secretsDomain.SecretDescriptor,
	outcomes []outcome,
	rctx secretsDomain.ResolutionContext,
) error {
	var failures []*secretsDomain.ResolutionError
	for i, o := range outcomes {
		if o.err == nil {
			continue
		}
		descriptor := descriptors[i]
		failure := &secretsDomain.ResolutionError{
			Name:     descriptor.Name,
			Sources:  o.sources,
			Required: descriptor.Required,
			Err:      o.err,
		}

		if descriptor.Required || !rctx.AllowOptionalFailures {
			failures = append(failures, failure)
			continue
		}

		logger.Warn("optional secret not resolved",
			slog.String("name", descriptor.Name),
			slog.Any("sources", o.sources),
			slog.Any("error", o.err),
		)
	}

	if len(failures) == 0 {
		return nil
	}
	return &secretsDomain.AggregateError{Failures: failures}
}

// NewResolverUseCase creates a ResolverUseCase. A descriptor whose remote backend is missing
// from sources fails as unavailable; a missing local source is a config error.
func NewResolverUseCase(
	sources map[secretsDomain.Source]Source,
	config ResolverConfig,
	logger *slog.Logger,
) ResolverUseCase {
	if config.Timeout <= 0 {
		config.Timeout = defaultResolveTimeout
	}
	if config.Concurrency <= 0 {
		config.Concurrency = defaultResolveConcurrency
	}

	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Limit(config.RateLimit)
	}
	burst := max(config.RateBurst, 1)

	return &resolverUseCase{
		sources: sources,
		limiter: rate.NewLimiter(limit, burst),
		config:  config,
		logger:  logger,
	}
}
