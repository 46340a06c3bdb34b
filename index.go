package csvdiff

import "sort"

// indexedRow retains an expected row and its file position. The position
// makes the trailing deletion sweep deterministic: a Go map has no retained
// order, so remaining rows are emitted sorted by where they appeared in the
// expected file.
type indexedRow struct {
	row []string
	pos int
}

// identityIndex maps identity-key values to expected rows. It is owned by
// exactly one comparison run: built once, drained during the match pass,
// then discarded.
type identityIndex struct {
	column int
	rows   map[string]indexedRow
}

// newIdentityIndex builds the index from the materialized expected rows.
// On duplicate keys the later row by file order overwrites the earlier one;
// only the last occurrence participates in matching.
func newIdentityIndex(rows [][]string, column int) (*identityIndex, error) {
	idx := &identityIndex{
		column: column,
		rows:   make(map[string]indexedRow, len(rows)),
	}
	for i, row := range rows {
		if column >= len(row) {
			return nil, &ErrIdentityColumnOutOfRange{Index: column, Arity: len(row)}
		}
		idx.rows[row[column]] = indexedRow{row: row, pos: i}
	}
	return idx, nil
}

// take removes and returns the expected row for key. A matched expected row
// is consumed: it must not match again and must not appear in the deletion
// sweep.
func (x *identityIndex) take(key string) ([]string, bool) {
	e, ok := x.rows[key]
	if ok {
		delete(x.rows, key)
	}
	return e.row, ok
}

// remaining returns the never-matched expected rows in expected-file order.
func (x *identityIndex) remaining() [][]string {
	left := make([]indexedRow, 0, len(x.rows))
	for _, e := range x.rows {
		left = append(left, e)
	}
	sort.Slice(left, func(i, j int) bool { return left[i].pos < left[j].pos })

	rows := make([][]string, len(left))
	for i, e := range left {
		rows[i] = e.row
	}
	return rows
}
