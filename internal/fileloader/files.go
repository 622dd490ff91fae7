package fileloader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Format is the layout of a table file once any compression is removed.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

// String returns the string representation of Format
func (f Format) String() string {
	if f == FormatXLSX {
		return "xlsx"
	}
	return "csv"
}

// FormatFromPath picks the file format from its extension, ignoring a
// trailing compression extension ("data.xlsx" or "data.csv.gz").
func FormatFromPath(path string) Format {
	if CompressionFromPath(path) != CompressionNone {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	return FormatCSV
}

// Open opens path for reading, decompressing it if needed.
func Open(path string) (io.ReadCloser, CompressionType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompressionNone, err
	}

	r, ct, err := NewDecompressingReader(f)
	if err != nil {
		f.Close()
		return nil, ct, fmt.Errorf("%s: %w", path, err)
	}
	return &decompressingReadCloser{reader: r, file: f}, ct, nil
}

// WriteFile calls write with a writer whose output is compressed according to
// the extension of path and then atomically replaces path with the result.
// Nothing is written if write fails.
func WriteFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	cw, err := NewCompressingWriter(&buf, CompressionFromPath(path))
	if err != nil {
		return err
	}
	if err := write(cw); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
