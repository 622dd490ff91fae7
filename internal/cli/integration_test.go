//go:build integration

package cli_test

import (
	"strings"
	"testing"

	"github.com/aidanlsb/csvplait/internal/testutil"
)

// TestIntegration_PipedSession drives the prompt loop from stdin.
func TestIntegration_PipedSession(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithFile("people.csv", testutil.PeopleCSV()).
		Build()

	stdin := strings.Join([]string{
		"set-headings",
		"drop 2",
		"titleize 0",
		"write clean.csv",
		"quit",
	}, "\n")

	result := ws.RunCLI(stdin, "people.csv")
	result.MustSucceed(t)
	if !strings.Contains(result.Stdout, "Wrote") {
		t.Errorf("expected write confirmation, got:\n%s", result.Stdout)
	}
	ws.AssertFileExists("clean.csv")
	ws.AssertFileContains("clean.csv", "Ada Lovelace")
}

// TestIntegration_SessionErrorsDoNotExit checks that a bad command is reported
// and the loop keeps reading.
func TestIntegration_SessionErrorsDoNotExit(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithFile("people.csv", testutil.PeopleCSV()).
		Build()

	result := ws.RunCLI("drop 99\nfrobnicate\nwrite out.csv\n", "people.csv")
	result.MustSucceed(t)
	if !strings.Contains(result.Stderr, "out of range") {
		t.Errorf("expected range error on stderr, got:\n%s", result.Stderr)
	}
	if !strings.Contains(result.Stderr, "unknown command") {
		t.Errorf("expected unknown command error on stderr, got:\n%s", result.Stderr)
	}
	ws.AssertFileExists("out.csv")
}

// TestIntegration_RunScript replays a saved session non-interactively.
func TestIntegration_RunScript(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithFile("people.csv", testutil.PeopleCSV()).
		WithFile("clean.txt", "set-headings\nslice 0 0\nwrite names.csv\n").
		Build()

	ws.RunCLI("", "run", "clean.txt", "people.csv").MustSucceed(t)
	ws.AssertFileContains("names.csv", "name\n")
}

// TestIntegration_RunScriptFailure checks the exit code and line prefix.
func TestIntegration_RunScriptFailure(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithFile("people.csv", testutil.PeopleCSV()).
		WithFile("bad.txt", "print\nreorder 7\n").
		Build()

	ws.RunCLI("", "run", "bad.txt", "people.csv").MustFailWithMessage(t, "bad.txt:2:")
}

func TestIntegration_Version(t *testing.T) {
	ws := testutil.NewWorkspace(t).Build()

	result := ws.RunCLI("", "version", "--json")
	result.MustSucceed(t)
	if !strings.Contains(result.Stdout, `"go_version"`) {
		t.Errorf("expected JSON version output, got:\n%s", result.Stdout)
	}
}
