package rowjoin

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter   prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(rows, components int, duration time.Duration, err error) {
//	    p.queryCounter.Inc()
//	    p.queryHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordQuery is called after each entity query.
	// rows is the number of rows in the resulting view, components the number
	// of secondary components joined. err is nil if successful.
	RecordQuery(rows, components int, duration time.Duration, err error)

	// RecordQueryMany is called after each multi-entity query.
	// count is the number of requests, failed is 1 if the fan-out failed.
	RecordQueryMany(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuery(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQueryMany(int, int, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	QueryCount      atomic.Int64
	QueryErrors     atomic.Int64
	QueryRows       atomic.Int64
	QueryComponents atomic.Int64
	QueryTotalNanos atomic.Int64
	QueryManyCount  atomic.Int64
	QueryManyItems  atomic.Int64
	QueryManyFailed atomic.Int64
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(rows, components int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryRows.Add(int64(rows))
	b.QueryComponents.Add(int64(components))
}

// RecordQueryMany implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQueryMany(count, failed int, duration time.Duration) {
	b.QueryManyCount.Add(1)
	b.QueryManyItems.Add(int64(count))
	b.QueryManyFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		QueryCount:      b.QueryCount.Load(),
		QueryErrors:     b.QueryErrors.Load(),
		QueryRows:       b.QueryRows.Load(),
		QueryComponents: b.QueryComponents.Load(),
		QueryAvgNanos:   b.getAvgQueryNanos(),
		QueryManyCount:  b.QueryManyCount.Load(),
		QueryManyItems:  b.QueryManyItems.Load(),
		QueryManyFailed: b.QueryManyFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	QueryCount      int64
	QueryErrors     int64
	QueryRows       int64
	QueryComponents int64
	QueryAvgNanos   int64
	QueryManyCount  int64
	QueryManyItems  int64
	QueryManyFailed int64
}
