package table

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when an operation needs rows and none are loaded.
var ErrEmptyTable = errors.New("no data loaded")

// ErrNoHeadings is returned by heading edits when no heading row is set.
var ErrNoHeadings = errors.New("no headings set")

// ColumnIndexError reports a column index outside [0, NumCols).
type ColumnIndexError struct {
	Index   int
	NumCols int
	// Row is the offending row when a single row is narrower than the
	// table width, or -1 when the index is checked against NumCols.
	Row int
}

func (e *ColumnIndexError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("column %d out of range for row %d (%d fields)", e.Index, e.Row, e.NumCols)
	}
	if e.NumCols == 0 {
		return fmt.Sprintf("column %d out of range (table has no columns)", e.Index)
	}
	return fmt.Sprintf("column %d out of range (valid range: 0-%d)", e.Index, e.NumCols-1)
}

// DateFormatError reports a field that does not match the source date pattern.
type DateFormatError struct {
	Column  int
	Value   string
	Pattern string
	Err     error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("column %d: %q does not match date format %q", e.Column, e.Value, e.Pattern)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// MalformedInputError reports CSV text or command arguments that cannot be
// interpreted.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Malformed builds a MalformedInputError from a format string.
func Malformed(format string, args ...any) error {
	return &MalformedInputError{Reason: fmt.Sprintf(format, args...)}
}

func columnError(col, numCols int) error {
	return &ColumnIndexError{Index: col, NumCols: numCols, Row: -1}
}
