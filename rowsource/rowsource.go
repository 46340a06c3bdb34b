// Package rowsource tokenizes character-separated files into rows of string
// cells.
//
// It is the engine's parsing boundary: given a byte stream, an encoding and
// a handful of settings it yields rows either fully materialized (ReadAll)
// or one at a time through a callback (Stream). Malformed input surfaces as
// the parser's raw error; the engine performs no recovery.
package rowsource

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding"
)

// Settings configures one read of a dataset.
type Settings struct {
	// Delimiter is the field separator. Zero means ','.
	Delimiter rune

	// HeaderExtraction treats the first row as a header and excludes it from
	// the data output.
	HeaderExtraction bool

	// SelectedColumns restricts output rows to the given zero-based column
	// indexes, in the given order. nil selects all columns. A selected index
	// beyond a row's width yields an empty cell.
	SelectedColumns []int

	// Encoding decodes the raw bytes before tokenization. nil means the
	// input is already UTF-8.
	Encoding encoding.Encoding
}

// Reader tokenizes one dataset according to its Settings. It reads the
// underlying stream exactly once; create a new Reader for another pass.
type Reader struct {
	cr       *csv.Reader
	settings Settings
	started  bool
}

// New creates a Reader over r.
func New(r io.Reader, settings Settings) *Reader {
	if settings.Encoding != nil {
		r = settings.Encoding.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	if settings.Delimiter != 0 {
		cr.Comma = settings.Delimiter
	}
	// Arity is not enforced across rows; the engine decides what unequal
	// widths mean.
	cr.FieldsPerRecord = -1

	return &Reader{cr: cr, settings: settings}
}

// ReadAll materializes every data row.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	err := r.Stream(func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Stream invokes fn once per data row, in file order. A non-nil error from
// fn aborts the stream and is returned unchanged.
func (r *Reader) Stream(fn func(row []string) error) error {
	for {
		record, err := r.cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if !r.started {
			r.started = true
			if r.settings.HeaderExtraction {
				continue
			}
		}

		if err := fn(r.project(record)); err != nil {
			return err
		}
	}
}

// project applies column selection to one record.
func (r *Reader) project(record []string) []string {
	if r.settings.SelectedColumns == nil {
		return record
	}
	row := make([]string, len(r.settings.SelectedColumns))
	for i, col := range r.settings.SelectedColumns {
		if col >= 0 && col < len(record) {
			row[i] = record[col]
		}
	}
	return row
}
