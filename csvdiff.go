package csvdiff

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/encoding"

	"github.com/hupe1980/csvdiff/blobstore"
	"github.com/hupe1980/csvdiff/charset"
	"github.com/hupe1980/csvdiff/rowsource"
)

// Source names the expected and actual datasets within a store.
type Source struct {
	// Expected is the blob name of the reference dataset.
	Expected string
	// Actual is the blob name of the dataset under comparison.
	Actual string
}

// Comparator compares one source pair. A Comparator is cheap to construct;
// each Compare call is an independent run with no shared mutable state, so
// distinct Comparators may run concurrently against the same store.
type Comparator struct {
	store  blobstore.Store
	source Source
	opts   options
}

// New creates a Comparator. Configuration errors (nil store, empty source
// names, negative identity column) surface here, before any parsing.
func New(store blobstore.Store, source Source, optFns ...Option) (*Comparator, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if source.Expected == "" {
		return nil, fmt.Errorf("%w: expected", ErrEmptySource)
	}
	if source.Actual == "" {
		return nil, fmt.Errorf("%w: actual", ErrEmptySource)
	}

	opts := applyOptions(optFns)
	if opts.identityColumn < 0 {
		return nil, ErrNegativeIdentityColumn
	}

	return &Comparator{
		store:  store,
		source: source,
		opts:   opts,
	}, nil
}

// Compare runs a comparison in one call. See Comparator.Compare.
func Compare(ctx context.Context, store blobstore.Store, source Source, optFns ...Option) (*Result, error) {
	c, err := New(store, source, optFns...)
	if err != nil {
		return nil, err
	}
	return c.Compare(ctx)
}

// Compare executes one full comparison run and returns the immutable
// Result. It either completes fully or fails; there is no partial Result.
func (c *Comparator) Compare(ctx context.Context) (*Result, error) {
	start := time.Now()

	result, err := c.compare(ctx)

	duration := time.Since(start)
	c.opts.metricsCollector.RecordComparison(duration, err)

	var summary Summary
	if result != nil {
		summary = result.Summary()
	}
	c.opts.logger.LogComparison(ctx, c.source, summary, duration, err)

	return result, err
}

func (c *Comparator) compare(ctx context.Context) (*Result, error) {
	coll := &collector{}
	obs := observers{}
	if c.opts.observer != nil {
		obs = append(obs, c.opts.observer)
	}
	obs = append(obs, coll)

	obs.comparisonStarted(c.source)

	// Remote stores stage both sources up front so the passes below read
	// local copies.
	if pf, ok := c.store.(blobstore.Prefetcher); ok {
		if err := pf.Prefetch(ctx, c.source.Expected, c.source.Actual); err != nil {
			return nil, err
		}
	}

	expEnc, err := c.resolveEncoding(ctx, c.source.Expected)
	if err != nil {
		return nil, err
	}
	actEnc, err := c.resolveEncoding(ctx, c.source.Actual)
	if err != nil {
		return nil, err
	}

	headers, err := c.readHeaders(ctx, expEnc)
	if err != nil {
		return nil, err
	}

	expRows, err := c.readAll(ctx, c.source.Expected, expEnc)
	if err != nil {
		return nil, err
	}

	index, err := newIdentityIndex(expRows, c.opts.identityColumn)
	if err != nil {
		return nil, err
	}

	if err := c.streamActual(ctx, actEnc, index, headers, obs); err != nil {
		return nil, err
	}

	// Whatever the actual stream never claimed was deleted.
	for _, row := range index.remaining() {
		obs.rowDeleted(row, headers)
		c.opts.metricsCollector.RecordRow(Deleted)
		c.opts.logger.LogRow(ctx, Deleted, row[c.opts.identityColumn])
	}

	result := coll.result()

	if c.opts.reportWriter != nil {
		location, err := c.opts.reportWriter.Write(ctx, newReportPayload(c.source, result))
		c.opts.logger.LogReport(ctx, location, err)
		if err != nil {
			return nil, err
		}
	}

	obs.comparisonFinished(c.source, result)
	return result, nil
}

// streamActual makes the single pass over the actual dataset, classifying
// each row against the identity index.
func (c *Comparator) streamActual(ctx context.Context, enc encoding.Encoding, index *identityIndex, headers []string, obs observers) error {
	blob, err := c.store.Open(ctx, c.source.Actual)
	if err != nil {
		return err
	}
	defer blob.Close()

	r := rowsource.New(blob, c.settings(enc, c.opts.headerExtraction))

	return r.Stream(func(actRow []string) error {
		if c.opts.identityColumn >= len(actRow) {
			return &ErrIdentityColumnOutOfRange{Index: c.opts.identityColumn, Arity: len(actRow)}
		}
		key := actRow[c.opts.identityColumn]

		expRow, ok := index.take(key)
		if !ok {
			obs.rowInserted(actRow, headers)
			c.opts.metricsCollector.RecordRow(Inserted)
			c.opts.logger.LogRow(ctx, Inserted, key)
			return nil
		}

		if slices.Equal(expRow, actRow) {
			obs.rowKept(actRow, headers)
			c.opts.metricsCollector.RecordRow(Kept)
			c.opts.logger.LogRow(ctx, Kept, key)
			return nil
		}

		if len(expRow) != len(actRow) {
			return &ErrArityMismatch{Key: key, Expected: len(expRow), Actual: len(actRow)}
		}

		obs.rowModified(actRow, headers, diffRows(headers, expRow, actRow))
		c.opts.metricsCollector.RecordRow(Modified)
		c.opts.logger.LogRow(ctx, Modified, key)
		return nil
	})
}

// resolveEncoding samples the blob's bytes unless an override is set.
func (c *Comparator) resolveEncoding(ctx context.Context, name string) (encoding.Encoding, error) {
	if c.opts.encoding != "" {
		enc, encName, err := charset.Resolve(nil, c.opts.encoding)
		if err != nil {
			return nil, err
		}
		c.opts.logger.LogEncoding(ctx, name, encName, false)
		return enc, nil
	}

	blob, err := c.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	enc, encName, err := charset.Resolve(blob, "")
	if err != nil {
		return nil, err
	}
	c.opts.logger.LogEncoding(ctx, name, encName, true)
	return enc, nil
}

// readHeaders determines the header row per the bootstrap rule: a
// header-extraction-disabled read of the expected dataset yields the first
// row as header only when at least two rows exist. The read is discarded;
// the data pass re-reads with extraction enabled.
func (c *Comparator) readHeaders(ctx context.Context, enc encoding.Encoding) ([]string, error) {
	if !c.opts.headerExtraction {
		return nil, nil
	}

	blob, err := c.store.Open(ctx, c.source.Expected)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	rows, err := rowsource.New(blob, c.settings(enc, false)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 1 {
		return rows[0], nil
	}
	return nil, nil
}

// readAll materializes the expected dataset.
func (c *Comparator) readAll(ctx context.Context, name string, enc encoding.Encoding) ([][]string, error) {
	blob, err := c.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	return rowsource.New(blob, c.settings(enc, c.opts.headerExtraction)).ReadAll()
}

func (c *Comparator) settings(enc encoding.Encoding, headerExtraction bool) rowsource.Settings {
	return rowsource.Settings{
		Delimiter:        c.opts.delimiter,
		HeaderExtraction: headerExtraction,
		SelectedColumns:  c.opts.selectedColumns,
		Encoding:         enc,
	}
}

// reportPayload is the serialized shape of one finished run.
type reportPayload struct {
	Expected     string     `json:"expected"`
	Actual       string     `json:"actual"`
	Summary      Summary    `json:"summary"`
	Different    bool       `json:"different"`
	RowsKept     [][]string `json:"rowsKept"`
	RowsDeleted  [][]string `json:"rowsDeleted"`
	RowsInserted [][]string `json:"rowsInserted"`
	RowsModified [][]string `json:"rowsModified"`
}

func newReportPayload(source Source, result *Result) reportPayload {
	return reportPayload{
		Expected:     source.Expected,
		Actual:       source.Actual,
		Summary:      result.Summary(),
		Different:    result.Different(),
		RowsKept:     result.RowsKept(),
		RowsDeleted:  result.RowsDeleted(),
		RowsInserted: result.RowsInserted(),
		RowsModified: result.RowsModified(),
	}
}
