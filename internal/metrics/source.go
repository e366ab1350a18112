package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SourceMetrics records individual source lookups made during resolution.
type SourceMetrics interface {
	// RecordLookup records one lookup against source. resolvedFrom is the tier that
	// produced the value (e.g., "env_local_file", "s3_cache") and empty on failure.
	RecordLookup(ctx context.Context, source, resolvedFrom, status string, duration time.Duration)
}

// sourceMetrics holds source lookup instruments.
type sourceMetrics struct {
	lookupCounter metric.Int64Counter
	durationHisto metric.Float64Histogram
}

// NewSourceMetrics creates SourceMetrics using the provided meter provider.
func NewSourceMetrics(meterProvider metric.MeterProvider, namespace string) (SourceMetrics, error) {
	meter := meterProvider.Meter(namespace)

	lookupCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_source_lookups_total", namespace),
		metric.WithDescription("Total number of secret source lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_source_lookup_duration_seconds", namespace),
		metric.WithDescription("Secret source lookup duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup duration histogram: %w", err)
	}

	return &sourceMetrics{
		lookupCounter: lookupCounter,
		durationHisto: durationHisto,
	}, nil
}

// RecordLookup records the lookup count and duration with source, resolved_from and status labels.
func (s *sourceMetrics) RecordLookup(
	ctx context.Context,
	source, resolvedFrom, status string,
	duration time.Duration,
) {
	if resolvedFrom == "" {
		resolvedFrom = "none"
	}
	attrs := metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("resolved_from", resolvedFrom),
		attribute.String("status", status),
	)

	s.lookupCounter.Add(ctx, 1, attrs)
	s.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

// NoOpSourceMetrics is a no-op implementation of SourceMetrics.
type NoOpSourceMetrics struct{}

// NewNoOpSourceMetrics creates a no-op SourceMetrics implementation.
func NewNoOpSourceMetrics() SourceMetrics {
	return &NoOpSourceMetrics{}
}

// RecordLookup does nothing when metrics are disabled.
func (n *NoOpSourceMetrics) RecordLookup(context.Context, string, string, string, time.Duration) {}
