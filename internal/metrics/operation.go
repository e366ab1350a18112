package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Components that report operations.
const (
	ComponentResolver = "resolver"
	ComponentStore    = "store"
	ComponentRotation = "rotation"
)

// Operation statuses. StatusPartial marks a call that handled some secrets and failed others,
// such as a resolution with optional failures in strict mode or an incomplete rotation.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// Secret outcomes counted per call.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"
	OutcomePushed   = "pushed"
	OutcomePulled   = "pulled"
	OutcomeDeleted  = "deleted"
	OutcomeConflict = "conflict"
	OutcomeRotated  = "rotated"
)

// OperationMetrics records resolver, store and rotation calls and the secrets each call handled.
// Secret names are never used as labels.
type OperationMetrics interface {
	// RecordOperation records one call with its status and duration.
	RecordOperation(ctx context.Context, component, operation, status string, duration time.Duration)

	// RecordSecrets adds count secrets that ended in outcome during one call. Zero counts are dropped.
	RecordSecrets(ctx context.Context, component, operation, outcome string, count int)
}

type operationMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	secretsCounter   metric.Int64Counter
}

// NewOperationMetrics creates OperationMetrics on the given meter provider. Metric names are
// prefixed with namespace (e.g., "sindri_secrets_operations_total").
func NewOperationMetrics(meterProvider metric.MeterProvider, namespace string) (OperationMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of resolver, store and rotation calls"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of resolver, store and rotation calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	secretsCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_secrets_total", namespace),
		metric.WithDescription("Secrets handled per outcome (resolved, fallback, cached, failed, pushed, rotated, ...)"),
		metric.WithUnit("{secret}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets counter: %w", err)
	}

	return &operationMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		secretsCounter:   secretsCounter,
	}, nil
}

func (o *operationMetrics) RecordOperation(
	ctx context.Context,
	component, operation, status string,
	duration time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	o.operationCounter.Add(ctx, 1, attrs)
	o.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

func (o *operationMetrics) RecordSecrets(ctx context.Context, component, operation, outcome string, count int) {
	if count <= 0 {
		return
	}
	o.secretsCounter.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

// NoOpOperationMetrics is used when metrics are disabled.
type NoOpOperationMetrics struct{}

// NewNoOpOperationMetrics creates a no-op OperationMetrics.
func NewNoOpOperationMetrics() OperationMetrics {
	return &NoOpOperationMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpOperationMetrics) RecordOperation(context.Context, string, string, string, time.Duration) {}

// RecordSecrets does nothing.
func (n *NoOpOperationMetrics) RecordSecrets(context.Context, string, string, string, int) {}
