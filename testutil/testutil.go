// Package testutil provides dataset helpers for csvdiff tests.
package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
)

// CSVBytes renders rows as a comma-separated file.
func CSVBytes(rows [][]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			panic(fmt.Errorf("testutil: write row: %w", err))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		panic(fmt.Errorf("testutil: flush: %w", err))
	}
	return buf.Bytes()
}

// RandomRows generates n deterministic pseudo-random rows of the given
// arity, with the first column holding a unique identity key. The same seed
// always produces the same rows.
func RandomRows(seed int64, n, arity int) [][]string {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, arity)
		row[0] = fmt.Sprintf("id-%04d", i)
		for j := 1; j < arity; j++ {
			row[j] = fmt.Sprintf("v%08x", rng.Uint32())
		}
		rows[i] = row
	}
	return rows
}

// Mutate returns a copy of row with the cell at column replaced.
func Mutate(row []string, column int, value string) []string {
	out := make([]string, len(row))
	copy(out, row)
	out[column] = value
	return out
}
