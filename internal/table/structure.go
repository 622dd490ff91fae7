package table

// DropColumn removes column col from every row and from the headings.
func (t *Table) DropColumn(col int) error {
	return t.DropColumns(col)
}

// DropColumns removes each listed column. Indices refer to the table as it
// is before the call; duplicates are ignored.
func (t *Table) DropColumns(cols ...int) error {
	if len(cols) == 0 {
		return Malformed("no columns given")
	}
	if err := t.checkColumns(cols...); err != nil {
		return err
	}

	drop := make(map[int]struct{}, len(cols))
	for _, col := range cols {
		drop[col] = struct{}{}
	}

	for i, row := range t.rows {
		t.rows[i] = withoutColumns(row, drop)
	}
	if t.headings != nil {
		t.headings = withoutColumns(t.headings, drop)
	}
	t.numCols -= len(drop)
	return nil
}

// withoutColumns returns a new row holding every field whose index is not in
// drop. All indices refer to the original row, so the result is the same as
// removing them one at a time from the highest down.
func withoutColumns(row []string, drop map[int]struct{}) []string {
	out := make([]string, 0, len(row))
	for i, v := range row {
		if _, ok := drop[i]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// SliceColumns keeps only columns start through end, inclusive.
func (t *Table) SliceColumns(start, end int) error {
	if err := t.checkColumns(start, end); err != nil {
		return err
	}
	if end < start {
		return Malformed("slice end %d is before start %d", end, start)
	}

	for i, row := range t.rows {
		t.rows[i] = cloneRow(row[start : end+1])
	}
	if t.headings != nil {
		t.headings = cloneRow(t.headings[start : end+1])
	}
	t.numCols = end - start + 1
	return nil
}

// ReorderColumns rebuilds every row so position i holds the value originally
// at order[i]. An index may appear more than once, which duplicates that
// column; columns left out of order are dropped.
func (t *Table) ReorderColumns(order []int) error {
	if len(order) == 0 {
		return Malformed("no column order given")
	}
	if err := t.checkColumns(order...); err != nil {
		return err
	}

	for i, row := range t.rows {
		t.rows[i] = reordered(row, order)
	}
	if t.headings != nil {
		t.headings = reordered(t.headings, order)
	}
	t.numCols = len(order)
	return nil
}

func reordered(row []string, order []int) []string {
	out := make([]string, len(order))
	for i, col := range order {
		out[i] = row[col]
	}
	return out
}
