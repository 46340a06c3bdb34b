package csvdiff

import (
	"log/slog"

	"github.com/hupe1980/csvdiff/report"
)

type options struct {
	identityColumn   int
	encoding         string
	delimiter        rune
	headerExtraction bool
	selectedColumns  []int
	observer         Observer
	reportWriter     *report.Writer
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures comparison behavior.
type Option func(*options)

// WithIdentityColumn configures the zero-based column index whose value is
// the matching key between the expected and actual datasets. Default: 0.
//
// When column selection is active (WithSelectedColumns), the index refers to
// a position within the selected row, not the raw file row.
func WithIdentityColumn(index int) Option {
	return func(o *options) {
		o.identityColumn = index
	}
}

// WithEncoding overrides character-encoding auto-detection with a fixed
// encoding for both sources. name is an IANA charset name such as "utf-8",
// "windows-1252" or "shift_jis". An empty name re-enables auto-detection.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithDelimiter configures the field delimiter. Default: ','.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

// WithoutHeader disables header extraction: the first row of each dataset is
// treated as data and diffs are labeled by column position instead of name.
// Header extraction is enabled by default.
func WithoutHeader() Option {
	return func(o *options) {
		o.headerExtraction = false
	}
}

// WithSelectedColumns restricts parsing to the given zero-based column
// indexes, in the given order. Rows and headers seen by the engine and by
// observers contain only the selected columns. nil selects all columns.
func WithSelectedColumns(indexes ...int) Option {
	return func(o *options) {
		o.selectedColumns = indexes
	}
}

// WithObserver registers an additional Observer for the run. The built-in
// accumulator always runs; the given observer receives the same events in
// the same order. Pass nil to register none.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithReportWriter configures a report writer that serializes the finished
// Result. The writer creates its target directory if needed. Pass nil to
// disable report output.
func WithReportWriter(w *report.Writer) Option {
	return func(o *options) {
		o.reportWriter = w
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// comparison runs. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := csvdiff.NewJSONLogger(slog.LevelInfo)
//	result, err := csvdiff.Compare(ctx, store, source, csvdiff.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		identityColumn:   0,
		delimiter:        ',',
		headerExtraction: true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
