package csvdiff

import "strconv"

// CellDiff records the disagreement between a matched pair of rows in one
// column.
type CellDiff struct {
	// Column is the header name of the differing column, or its positional
	// index rendered as a string when no headers are available.
	Column string `json:"column"`
	// Expected is the cell value from the expected row.
	Expected string `json:"expCell"`
	// Actual is the cell value from the actual row.
	Actual string `json:"actCell"`
}

// diffRows returns one CellDiff per column where the expected and actual
// cells differ, in column order. Both rows must have the same arity; the
// caller guards that before calling.
func diffRows(headers, expRow, actRow []string) []CellDiff {
	var diffs []CellDiff
	for i := range expRow {
		if expRow[i] == actRow[i] {
			continue
		}
		diffs = append(diffs, CellDiff{
			Column:   columnName(headers, i),
			Expected: expRow[i],
			Actual:   actRow[i],
		})
	}
	return diffs
}

// columnName labels column i from the headers, falling back to the positional
// index when headers are absent or narrower than the row.
func columnName(headers []string, i int) string {
	if i < len(headers) {
		return headers[i]
	}
	return strconv.Itoa(i)
}
