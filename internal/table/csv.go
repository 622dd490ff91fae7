package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aidanlsb/csvplait/internal/fileloader"
)

// Dialect is the single delimiter/quoting convention used for reading and
// writing. Quoting is always double-quote escaping.
type Dialect struct {
	Comma   rune
	UseCRLF bool
}

// DefaultDialect is comma separated with LF line endings.
func DefaultDialect() Dialect {
	return Dialect{Comma: ','}
}

func (d Dialect) normalized() Dialect {
	if d.Comma == 0 {
		d.Comma = ','
	}
	return d
}

// Load replaces the table contents with the CSV records read from r. Ragged
// rows are kept as read; call PadColumns to make the table rectangular.
// A blank line is kept as a row with no fields. Any previous headings are
// discarded.
func (t *Table) Load(r io.Reader) error {
	src := &lineCounter{r: stripBOM(bufio.NewReader(r))}
	reader := csv.NewReader(src)
	reader.Comma = t.dialect.normalized().Comma
	reader.FieldsPerRecord = -1

	var rows [][]string
	lastLine := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &MalformedInputError{Reason: "invalid CSV", Err: err}
		}

		start, _ := reader.FieldPos(0)
		rows = appendBlankRows(rows, start-lastLine-1)
		rows = append(rows, record)

		last := len(record) - 1
		end, _ := reader.FieldPos(last)
		lastLine = end + strings.Count(record[last], "\n")
	}
	rows = appendBlankRows(rows, src.lines()-lastLine)

	t.setRecords(rows)
	return nil
}

func appendBlankRows(rows [][]string, n int) [][]string {
	for i := 0; i < n; i++ {
		rows = append(rows, []string{})
	}
	return rows
}

// lineCounter counts the lines that pass through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	last     byte
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.newlines += bytes.Count(p[:n], []byte{'\n'})
		c.last = p[n-1]
	}
	return n, err
}

// lines is the number of lines read so far, counting an unterminated last
// line.
func (c *lineCounter) lines() int {
	if c.last != 0 && c.last != '\n' {
		return c.newlines + 1
	}
	return c.newlines
}

// ReadFile loads the file at path. Gzip, bzip2 and xz compressed files are
// detected from their content; .xlsx workbooks are read from their first
// sheet.
func (t *Table) ReadFile(path string) error {
	rc, _, err := fileloader.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	if fileloader.FormatFromPath(path) == fileloader.FormatXLSX {
		records, err := fileloader.ReadXLSX(rc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, &MalformedInputError{Reason: "invalid workbook", Err: err})
		}
		t.setRecords(records)
		return nil
	}

	if err := t.Load(rc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteFile replaces path with the table. The extension selects the output:
// .xlsx writes a workbook, and a trailing .gz or .xz compresses the result.
func (t *Table) WriteFile(path string) error {
	return fileloader.WriteFile(path, func(w io.Writer) error {
		if fileloader.FormatFromPath(path) == fileloader.FormatXLSX {
			return fileloader.WriteXLSX(w, t.records())
		}
		_, err := t.WriteTo(w)
		return err
	})
}

// records returns the headings (if any) followed by the rows.
func (t *Table) records() [][]string {
	out := make([][]string, 0, len(t.rows)+1)
	if t.headings != nil {
		out = append(out, t.headings)
	}
	return append(out, t.rows...)
}

func (t *Table) setRecords(records [][]string) {
	numCols := 0
	for _, record := range records {
		if len(record) > numCols {
			numCols = len(record)
		}
	}
	t.rows = records
	t.numCols = numCols
	t.headings = nil
}

// WriteTo writes the headings (if any) followed by every row as CSV.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	writer := csv.NewWriter(cw)
	writer.Comma = t.dialect.normalized().Comma
	writer.UseCRLF = t.dialect.UseCRLF

	for _, record := range t.records() {
		if err := writeRecord(writer, cw, record, t.dialect.UseCRLF); err != nil {
			return cw.n, err
		}
	}
	writer.Flush()
	return cw.n, writer.Error()
}

// writeRecord writes one record. encoding/csv writes a record holding a
// single empty field as a blank line, which its reader then skips, so that
// record is written as a quoted empty field instead.
func writeRecord(writer *csv.Writer, w io.Writer, record []string, crlf bool) error {
	if len(record) != 1 || record[0] != "" {
		return writer.Write(record)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	line := "\"\"\n"
	if crlf {
		line = "\"\"\r\n"
	}
	_, err := io.WriteString(w, line)
	return err
}

// Serialize returns the table as CSV text.
func (t *Table) Serialize() (string, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Deserialize parses text into a new padded table. Headings are not set;
// call SetHeadings if the first record is a heading row.
func Deserialize(text string, d Dialect) (*Table, error) {
	t := NewWithDialect(d)
	if err := t.Load(strings.NewReader(text)); err != nil {
		return nil, err
	}
	t.PadColumns("")
	return t, nil
}

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
