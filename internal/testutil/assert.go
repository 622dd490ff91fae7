package testutil

import (
	"os"
	"strings"
)

// AssertFileExists fails the test if the file does not exist.
func (w *Workspace) AssertFileExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.Join(relPath)); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *Workspace) AssertFileNotExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.Join(relPath)); err == nil {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (w *Workspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileEquals fails the test if the file content differs from want.
func (w *Workspace) AssertFileEquals(relPath, want string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if content != want {
		w.t.Errorf("unexpected content in %s\nwant:\n%s\ngot:\n%s", relPath, want, content)
	}
}
