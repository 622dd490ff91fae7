// Package testutil provides reusable test utilities for csvplait tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Workspace is a temporary directory of input files for a test.
type Workspace struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the workspace.
// The path is relative to the workspace root.
func (w *Workspace) WithFile(path, content string) *Workspace {
	w.files[path] = content
	return w
}

// Build creates the workspace directory and all configured files.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	w.Path = w.t.TempDir()
	for path, content := range w.files {
		w.WriteFile(path, content)
	}
	return w
}

// Join returns the absolute path of relPath inside the workspace.
func (w *Workspace) Join(relPath string) string {
	return filepath.Join(w.Path, relPath)
}

// WriteFile writes a file to the workspace, creating directories as needed.
func (w *Workspace) WriteFile(relPath, content string) {
	w.t.Helper()
	fullPath := w.Join(relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the workspace.
func (w *Workspace) ReadFile(relPath string) string {
	w.t.Helper()
	fullPath := w.Join(relPath)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", fullPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the workspace.
func (w *Workspace) FileExists(relPath string) bool {
	w.t.Helper()
	_, err := os.Stat(w.Join(relPath))
	return err == nil
}

// PeopleCSV returns a small headed CSV with a date column.
func PeopleCSV() string {
	return `name,joined,city,status
ada lovelace,12/10/2015,london,N/A
grace hopper,12/09/2016,new york,active
o'brien's cafe,,dublin,N/A
`
}

// RaggedCSV returns a CSV whose rows have different widths.
func RaggedCSV() string {
	return `a,b,c
1,2
x
`
}
