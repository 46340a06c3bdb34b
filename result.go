package csvdiff

// Summary holds per-classification row counts for one comparison run.
type Summary struct {
	Kept     int `json:"kept"`
	Deleted  int `json:"deleted"`
	Inserted int `json:"inserted"`
	Modified int `json:"modified"`
}

// Result is the immutable outcome of one comparison run. It is constructed
// only after the full reconciliation pass completes and is never mutated
// afterward. Callers must not modify the returned slices.
type Result struct {
	kept     [][]string
	deleted  [][]string
	inserted [][]string
	modified [][]string

	isDeleted  bool
	isInserted bool
	isModified bool
}

// RowsKept returns the rows present and unchanged in both datasets, in
// actual-file order.
func (r *Result) RowsKept() [][]string { return r.kept }

// RowsDeleted returns the expected rows with no actual counterpart, in
// expected-file order.
func (r *Result) RowsDeleted() [][]string { return r.deleted }

// RowsInserted returns the actual rows with no expected counterpart, in
// actual-file order.
func (r *Result) RowsInserted() [][]string { return r.inserted }

// RowsModified returns the actual rows whose expected counterpart differs,
// in actual-file order.
func (r *Result) RowsModified() [][]string { return r.modified }

// HasDeleted reports whether any row was classified as deleted.
func (r *Result) HasDeleted() bool { return r.isDeleted }

// HasInserted reports whether any row was classified as inserted.
func (r *Result) HasInserted() bool { return r.isInserted }

// HasModified reports whether any row was classified as modified.
func (r *Result) HasModified() bool { return r.isModified }

// Different reports whether the two datasets differ at all.
func (r *Result) Different() bool {
	return r.isDeleted || r.isInserted || r.isModified
}

// Summary returns per-classification row counts.
func (r *Result) Summary() Summary {
	return Summary{
		Kept:     len(r.kept),
		Deleted:  len(r.deleted),
		Inserted: len(r.inserted),
		Modified: len(r.modified),
	}
}

// collector is the built-in accumulating Observer. One instance participates
// in every comparison run; its state is read out once at the end to build the
// Result.
type collector struct {
	kept     [][]string
	deleted  [][]string
	inserted [][]string
	modified [][]string

	isDeleted  bool
	isInserted bool
	isModified bool
}

func (c *collector) ComparisonStarted(Source) {}

func (c *collector) RowKept(row, _ []string) {
	c.kept = append(c.kept, row)
}

func (c *collector) RowDeleted(row, _ []string) {
	c.isDeleted = true
	c.deleted = append(c.deleted, row)
}

func (c *collector) RowInserted(row, _ []string) {
	c.isInserted = true
	c.inserted = append(c.inserted, row)
}

// RowModified retains the actual row only; diffs are delivered to observers
// that want them, not accumulated here.
func (c *collector) RowModified(row, _ []string, _ []CellDiff) {
	c.isModified = true
	c.modified = append(c.modified, row)
}

func (c *collector) ComparisonFinished(Source, *Result) {}

func (c *collector) result() *Result {
	return &Result{
		kept:       c.kept,
		deleted:    c.deleted,
		inserted:   c.inserted,
		modified:   c.modified,
		isDeleted:  c.isDeleted,
		isInserted: c.isInserted,
		isModified: c.isModified,
	}
}
