package csvdiff

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
//	    rowCounter    *prometheus.CounterVec
//	    runHistogram  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRow(class csvdiff.Classification) {
//	    p.rowCounter.WithLabelValues(class.String()).Inc()
//	}
type MetricsCollector interface {
	// RecordRow is called once per classified row.
	RecordRow(class Classification)

	// RecordComparison is called after each comparison run.
	// duration is the total time taken, err is nil if successful.
	RecordComparison(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRow(Classification)              {}
func (NoopMetricsCollector) RecordComparison(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	KeptRows             atomic.Int64
	DeletedRows          atomic.Int64
	InsertedRows         atomic.Int64
	ModifiedRows         atomic.Int64
	ComparisonCount      atomic.Int64
	ComparisonErrors     atomic.Int64
	ComparisonTotalNanos atomic.Int64
}

// RecordRow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRow(class Classification) {
	switch class {
	case Kept:
		b.KeptRows.Add(1)
	case Deleted:
		b.DeletedRows.Add(1)
	case Inserted:
		b.InsertedRows.Add(1)
	case Modified:
		b.ModifiedRows.Add(1)
	}
}

// RecordComparison implements MetricsCollector.
func (b *BasicMetricsCollector) RecordComparison(duration time.Duration, err error) {
	b.ComparisonCount.Add(1)
	b.ComparisonTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ComparisonErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		KeptRows:           b.KeptRows.Load(),
		DeletedRows:        b.DeletedRows.Load(),
		InsertedRows:       b.InsertedRows.Load(),
		ModifiedRows:       b.ModifiedRows.Load(),
		ComparisonCount:    b.ComparisonCount.Load(),
		ComparisonErrors:   b.ComparisonErrors.Load(),
		ComparisonAvgNanos: b.getAvgComparisonNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgComparisonNanos() int64 {
	count := b.ComparisonCount.Load()
	if count == 0 {
		return 0
	}
	return b.ComparisonTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	KeptRows           int64
	DeletedRows        int64
	InsertedRows       int64
	ModifiedRows       int64
	ComparisonCount    int64
	ComparisonErrors   int64
	ComparisonAvgNanos int64
}
