// Package table holds a CSV file in memory as rows of string fields and
// implements the column edits applied to it.
//
// A Table is not safe for concurrent use. Structural edits (drop, slice,
// reorder) rebuild every row into a new slice and check all rows before
// touching any of them, so a failed edit leaves the table as it was.
package table

// Table is an optional heading row plus data rows.
type Table struct {
	headings []string
	rows     [][]string
	numCols  int
	dialect  Dialect
}

// New returns an empty table using the default dialect.
func New() *Table {
	return &Table{dialect: DefaultDialect()}
}

// NewWithDialect returns an empty table that reads and writes using d.
func NewWithDialect(d Dialect) *Table {
	return &Table{dialect: d.normalized()}
}

// Dialect returns the CSV dialect used by Load and Serialize.
func (t *Table) Dialect() Dialect {
	return t.dialect
}

// SetDialect changes the CSV dialect for subsequent reads and writes.
func (t *Table) SetDialect(d Dialect) {
	t.dialect = d.normalized()
}

// NumCols returns the width used for padding and index validation.
func (t *Table) NumCols() int {
	return t.numCols
}

// NumRows returns the number of data rows (headings excluded).
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasHeadings reports whether a heading row is in use.
func (t *Table) HasHeadings() bool {
	return t.headings != nil
}

// Headings returns a copy of the heading row, or nil.
func (t *Table) Headings() []string {
	if t.headings == nil {
		return nil
	}
	return cloneRow(t.headings)
}

// Rows returns a deep copy of the data rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = cloneRow(row)
	}
	return out
}

// Empty reports whether neither rows nor headings are loaded.
func (t *Table) Empty() bool {
	return len(t.rows) == 0 && t.headings == nil
}

// PadColumns extends every row shorter than NumCols with padding.
func (t *Table) PadColumns(padding string) {
	for i, row := range t.rows {
		deficit := t.numCols - len(row)
		if deficit <= 0 {
			continue
		}
		padded := make([]string, len(row), t.numCols)
		copy(padded, row)
		for j := 0; j < deficit; j++ {
			padded = append(padded, padding)
		}
		t.rows[i] = padded
	}
}

// SetHeadings uses explicit as the heading row. With no explicit headings the
// first data row is removed from the rows and promoted instead.
func (t *Table) SetHeadings(explicit []string) error {
	if explicit != nil {
		t.headings = cloneRow(explicit)
		return nil
	}
	if len(t.rows) == 0 {
		return ErrEmptyTable
	}
	t.headings = t.rows[0]
	t.rows = t.rows[1:]
	return nil
}

// DropHeadings stops using a heading row. The headings are discarded, not
// returned to the data rows.
func (t *Table) DropHeadings() {
	t.headings = nil
}

func (t *Table) requireData() error {
	if t.Empty() {
		return ErrEmptyTable
	}
	return nil
}

// CheckColumns reports the first of cols that is not a valid index for every
// row, without changing the table.
func (t *Table) CheckColumns(cols ...int) error {
	return t.checkColumns(cols...)
}

// checkColumns validates cols against NumCols and against the actual width of
// every row and the headings.
func (t *Table) checkColumns(cols ...int) error {
	if err := t.requireData(); err != nil {
		return err
	}
	maxCol := -1
	for _, col := range cols {
		if col < 0 || col >= t.numCols {
			return columnError(col, t.numCols)
		}
		if col > maxCol {
			maxCol = col
		}
	}
	if maxCol < 0 {
		return nil
	}
	for i, row := range t.rows {
		if maxCol >= len(row) {
			return &ColumnIndexError{Index: maxCol, NumCols: len(row), Row: i}
		}
	}
	if t.headings != nil && maxCol >= len(t.headings) {
		return &ColumnIndexError{Index: maxCol, NumCols: len(t.headings), Row: -1}
	}
	return nil
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}
