package csvdiff

// Classification is the outcome assigned to one row by a comparison run.
type Classification uint8

const (
	// Kept means the actual row matched an expected row cell for cell.
	Kept Classification = iota
	// Deleted means an expected row had no counterpart in the actual dataset.
	Deleted
	// Inserted means an actual row had no counterpart in the expected dataset.
	Inserted
	// Modified means the actual row matched an expected row by identity key
	// but at least one cell differs.
	Modified
)

// String returns the lowercase name of the classification.
func (c Classification) String() string {
	switch c {
	case Kept:
		return "kept"
	case Deleted:
		return "deleted"
	case Inserted:
		return "inserted"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Observer receives classification events as the comparison run produces
// them. Observers are pure sinks: they cannot influence classification or
// control flow.
//
// Events arrive in a fixed order: ComparisonStarted, one row event per actual
// row in stream order, deletion events in expected-file order after the
// actual stream ends, then ComparisonFinished. Exactly one comparison run
// drives an Observer instance at a time; implementations need no internal
// locking unless they are shared across concurrent runs.
type Observer interface {
	// ComparisonStarted is called once, before any parsing begins.
	ComparisonStarted(source Source)

	// RowKept is called for each actual row identical to its expected match.
	RowKept(row, headers []string)

	// RowDeleted is called for each expected row never matched, after the
	// actual stream is exhausted.
	RowDeleted(row, headers []string)

	// RowInserted is called for each actual row with no expected match.
	RowInserted(row, headers []string)

	// RowModified is called for each actual row that matched an expected row
	// with differing cells. diffs holds one entry per differing column, in
	// header order.
	RowModified(row, headers []string, diffs []CellDiff)

	// ComparisonFinished is called once, with the finished immutable Result.
	ComparisonFinished(source Source, result *Result)
}

// NoopObserver is an Observer that ignores all events. Embed it to implement
// only the events you care about.
type NoopObserver struct{}

func (NoopObserver) ComparisonStarted(Source)                {}
func (NoopObserver) RowKept(_, _ []string)                   {}
func (NoopObserver) RowDeleted(_, _ []string)                {}
func (NoopObserver) RowInserted(_, _ []string)               {}
func (NoopObserver) RowModified(_, _ []string, _ []CellDiff) {}
func (NoopObserver) ComparisonFinished(Source, *Result)      {}

// observers fans events out to every registered Observer in order.
type observers []Observer

func (os observers) comparisonStarted(source Source) {
	for _, o := range os {
		o.ComparisonStarted(source)
	}
}

func (os observers) rowKept(row, headers []string) {
	for _, o := range os {
		o.RowKept(row, headers)
	}
}

func (os observers) rowDeleted(row, headers []string) {
	for _, o := range os {
		o.RowDeleted(row, headers)
	}
}

func (os observers) rowInserted(row, headers []string) {
	for _, o := range os {
		o.RowInserted(row, headers)
	}
}

func (os observers) rowModified(row, headers []string, diffs []CellDiff) {
	for _, o := range os {
		o.RowModified(row, headers, diffs)
	}
}

func (os observers) comparisonFinished(source Source, result *Result) {
	for _, o := range os {
		o.ComparisonFinished(source, result)
	}
}
