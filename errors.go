package csvdiff

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStore is returned when the comparator is constructed without a store.
	ErrNilStore = errors.New("store must not be nil")

	// ErrEmptySource is returned when a source name is empty.
	ErrEmptySource = errors.New("source name must not be empty")

	// ErrNegativeIdentityColumn is returned when the configured identity
	// column index is negative.
	ErrNegativeIdentityColumn = errors.New("identity column index must not be negative")
)

// ErrIdentityColumnOutOfRange indicates that the configured identity column
// index is outside the arity of the parsed rows.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIdentityColumnOutOfRange struct {
	Index int
	Arity int
	cause error
}

func (e *ErrIdentityColumnOutOfRange) Error() string {
	return fmt.Sprintf("identity column %d out of range for row width %d", e.Index, e.Arity)
}

func (e *ErrIdentityColumnOutOfRange) Unwrap() error { return e.cause }

// ErrArityMismatch indicates that a matched pair of expected and actual rows
// have different widths, so no cell-by-cell diff can be computed.
//
// Rows within one dataset are assumed to share arity; when a matched pair
// disagrees across datasets the run fails rather than truncating the diff to
// the shorter row, which could misreport equality.
type ErrArityMismatch struct {
	Key      string
	Expected int
	Actual   int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("arity mismatch for identity key %q: expected row has %d cells, actual row has %d", e.Key, e.Expected, e.Actual)
}
