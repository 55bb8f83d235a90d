// Package telemetry provides OpenTelemetry metrics for the advice
// gateway.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	// Counters
	requests       metric.Int64Counter
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
	staleFallbacks metric.Int64Counter
	failures       metric.Int64Counter

	// Histograms
	callDuration metric.Float64Histogram

	initErr error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter.
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/laokip/advisor",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config = DefaultMetricsConfig()
	}

	meter := otel.GetMeterProvider().Meter(
		config.MeterName,
		metric.WithInstrumentationVersion(config.MeterVersion),
	)

	mp := &MetricsProvider{meter: meter}
	mp.initErr = mp.initInstruments()
	return mp
}

// initInstruments initializes all metric instruments.
func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.requests, err = mp.meter.Int64Counter(
		"advisor.gateway.requests",
		metric.WithDescription("Number of gateway requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	mp.cacheHits, err = mp.meter.Int64Counter(
		"advisor.cache.hits",
		metric.WithDescription("Number of fresh cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return err
	}

	mp.cacheMisses, err = mp.meter.Int64Counter(
		"advisor.cache.misses",
		metric.WithDescription("Number of cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return err
	}

	mp.staleFallbacks, err = mp.meter.Int64Counter(
		"advisor.cache.stale_fallbacks",
		metric.WithDescription("Number of stale cache fallbacks after backend failure"),
		metric.WithUnit("{fallback}"),
	)
	if err != nil {
		return err
	}

	mp.failures, err = mp.meter.Int64Counter(
		"advisor.gateway.failures",
		metric.WithDescription("Number of requests that failed with no cache to fall back on"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return err
	}

	mp.callDuration, err = mp.meter.Float64Histogram(
		"advisor.backend.call.duration",
		metric.WithDescription("Duration of backend generation calls"),
		metric.WithUnit("ms"),
	)
	return err
}

// Error returns any initialization error.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

func domainAttr(domain string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("domain", domain))
}

// RecordRequest records one gateway request.
func (mp *MetricsProvider) RecordRequest(ctx context.Context, domain string) {
	if mp.requests != nil {
		mp.requests.Add(ctx, 1, domainAttr(domain))
	}
}

// RecordCacheHit records a fresh cache hit.
func (mp *MetricsProvider) RecordCacheHit(ctx context.Context, domain string) {
	if mp.cacheHits != nil {
		mp.cacheHits.Add(ctx, 1, domainAttr(domain))
	}
}

// RecordCacheMiss records a cache miss.
func (mp *MetricsProvider) RecordCacheMiss(ctx context.Context, domain string) {
	if mp.cacheMisses != nil {
		mp.cacheMisses.Add(ctx, 1, domainAttr(domain))
	}
}

// RecordStaleFallback records a successful stale fallback.
func (mp *MetricsProvider) RecordStaleFallback(ctx context.Context, domain string) {
	if mp.staleFallbacks != nil {
		mp.staleFallbacks.Add(ctx, 1, domainAttr(domain))
	}
}

// RecordFailure records a request that surfaced an error.
func (mp *MetricsProvider) RecordFailure(ctx context.Context, domain string) {
	if mp.failures != nil {
		mp.failures.Add(ctx, 1, domainAttr(domain))
	}
}

// RecordCallDuration records the duration of a backend call.
func (mp *MetricsProvider) RecordCallDuration(ctx context.Context, domain string, d time.Duration) {
	if mp.callDuration != nil {
		mp.callDuration.Record(ctx, float64(d.Milliseconds()), domainAttr(domain))
	}
}
