// Package history keeps an append-only record of accepted command lines.
//
// Lines are kept in memory for the `history` command and, when a journal path
// is configured, appended to that file as they arrive so a session can be
// replayed later with `csvplait run`.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Log is an append-only list of command lines.
type Log struct {
	lines       []string
	journalPath string
}

// New creates a log. If journalPath is non-empty every recorded line is also
// appended to that file.
func New(journalPath string) *Log {
	return &Log{journalPath: journalPath}
}

// JournalPath returns the journal file path, or "" when journaling is off.
func (l *Log) JournalPath() string {
	return l.journalPath
}

// Record appends line. The in-memory record is always updated; an error is
// returned only if the journal could not be written.
func (l *Log) Record(line string) error {
	l.lines = append(l.lines, line)
	if l.journalPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.journalPath), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(l.journalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history journal: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write history journal: %w", err)
	}
	return nil
}

// Len returns the number of recorded lines.
func (l *Log) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the recorded lines, oldest first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// WriteTo writes one recorded line per output line.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range l.lines {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Export writes the recorded lines to path, replacing it atomically.
func (l *Log) Export(path string) error {
	var sb strings.Builder
	if _, err := l.WriteTo(&sb); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(sb.String())); err != nil {
		return fmt.Errorf("failed to write history %s: %w", path, err)
	}
	return nil
}

// ReadScript reads a file of command lines, such as an exported history.
func ReadScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
