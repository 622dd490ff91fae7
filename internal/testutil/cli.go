package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	// binaryPath caches the path to the built csvplait binary.
	binaryPath string
	buildMu    sync.Mutex
	buildErr   error
)

// CLIResult represents the result of running the csvplait binary.
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// BuildCLI builds the csvplait binary and returns its path.
// This is called automatically by RunCLI.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	if binaryPath != "" {
		if _, err := os.Stat(binaryPath); err == nil {
			return binaryPath
		}
		binaryPath = ""
		buildErr = nil
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
	} else {
		tmpDir, err := os.MkdirTemp("", "csvplait-cli-bin-*")
		if err != nil {
			buildErr = err
		} else {
			binName := "csvplait"
			if runtime.GOOS == "windows" {
				binName = "csvplait.exe"
			}

			binaryPath = filepath.Join(tmpDir, binName)
			cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/csvplait")
			cmd.Dir = projectRoot
			output, err := cmd.CombinedOutput()
			if err != nil {
				buildErr = &BuildError{Output: string(output), Err: err}
				binaryPath = ""
			}
		}
	}

	if buildErr != nil {
		t.Fatalf("failed to build CLI: %v", buildErr)
	}

	return binaryPath
}

// BuildError represents an error building the CLI binary.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return e.Err.Error() + "\n" + e.Output
}

// findProjectRoot walks up the directory tree to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunCLI runs csvplait inside the workspace with stdin as its input. HOME
// points at the workspace so no user config is picked up.
func (w *Workspace) RunCLI(stdin string, args ...string) *CLIResult {
	w.t.Helper()

	binary := BuildCLI(w.t)

	cmd := exec.Command(binary, args...)
	cmd.Dir = w.Path
	cmd.Env = append(os.Environ(), "HOME="+w.Path, "XDG_CONFIG_HOME="+w.Join(".config"))
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	result := &CLIResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}
	return result
}

// MustSucceed fails the test if the process exited non-zero.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if r.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstdout:\n%s\nstderr:\n%s", r.ExitCode, r.Stdout, r.Stderr)
	}
	return r
}

// MustFailWithMessage fails the test if the process succeeded, or if stderr
// does not contain msgSubstr.
func (r *CLIResult) MustFailWithMessage(t *testing.T, msgSubstr string) *CLIResult {
	t.Helper()
	if r.ExitCode == 0 {
		t.Fatalf("expected command to fail, but it succeeded\nstdout:\n%s", r.Stdout)
	}
	if msgSubstr != "" && !strings.Contains(r.Stderr, msgSubstr) {
		t.Errorf("expected stderr to contain %q, got:\n%s", msgSubstr, r.Stderr)
	}
	return r
}
