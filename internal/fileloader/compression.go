// Package fileloader opens and creates table files: plain or compressed CSV
// and Excel workbooks.
package fileloader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression format of a file
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// ErrUnsupportedCompression is returned when writing a format that can only
// be read.
var ErrUnsupportedCompression = errors.New("unsupported compression")

// Magic byte signatures for compression detection
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DetectCompression identifies a compressed stream from its first bytes.
func DetectCompression(header []byte) CompressionType {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ
	}
	return CompressionNone
}

// CompressionFromPath maps a file extension to the compression used when
// writing: .gz, .bz2 or .xz.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".bz2":
		return CompressionBzip2
	case ".xz":
		return CompressionXZ
	}
	return CompressionNone
}

// NewDecompressingReader wraps r so compressed input is decompressed on the
// fly. The compression is detected from the stream itself, not a file name.
func NewDecompressingReader(r io.Reader) (io.Reader, CompressionType, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, CompressionNone, err
	}

	ct := DetectCompression(header)
	switch ct {
	case CompressionGzip:
		gzReader, err := gzip.NewReader(br)
		if err != nil {
			return nil, ct, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, ct, nil
	case CompressionBzip2:
		return bzip2.NewReader(br), ct, nil
	case CompressionXZ:
		xzReader, err := xz.NewReader(br)
		if err != nil {
			return nil, ct, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, ct, nil
	}
	return br, CompressionNone, nil
}

// NewCompressingWriter wraps w for the given compression. Close the returned
// writer to flush it; w itself is not closed.
func NewCompressingWriter(w io.Writer, ct CompressionType) (io.WriteCloser, error) {
	switch ct {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionXZ:
		xzWriter, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, nil
	default:
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedCompression, ct)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// decompressingReadCloser wraps a decompressing reader and the underlying file
type decompressingReadCloser struct {
	reader io.Reader
	file   *os.File
}

func (d *decompressingReadCloser) Read(p []byte) (n int, err error) {
	return d.reader.Read(p)
}

func (d *decompressingReadCloser) Close() error {
	if closer, ok := d.reader.(io.Closer); ok {
		closer.Close()
	}
	return d.file.Close()
}
