package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/csvplait/internal/history"
	"github.com/aidanlsb/csvplait/internal/table"
	"github.com/aidanlsb/csvplait/internal/testutil"
)

type harness struct {
	*Session
	out    *bytes.Buffer
	errOut *bytes.Buffer
	ws     *testutil.Workspace
}

func newHarness(t *testing.T, vars map[string]string) *harness {
	t.Helper()
	ws := testutil.NewWorkspace(t).
		WithFile("people.csv", testutil.PeopleCSV()).
		WithFile("ragged.csv", testutil.RaggedCSV()).
		Build()

	var out, errOut bytes.Buffer
	s := NewSession(SessionConfig{
		Out:     &out,
		Err:     &errOut,
		Options: DefaultOptions(),
		Vars:    vars,
	})
	return &harness{Session: s, out: &out, errOut: &errOut, ws: ws}
}

// mustRun runs lines and fails on the first error.
func (h *harness) mustRun(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, h.Run(line), "line %q", line)
	}
}

func (h *harness) readPeople(t *testing.T) {
	t.Helper()
	h.mustRun(t, "read "+h.ws.Join("people.csv"), "set-headings")
}

func TestSessionEndToEnd(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t,
		"titleize 0",
		"date-format %m/%d/%Y %Y-%m-%d 1",
		`substitute N/A "" 3`,
		"drop 2",
		"write "+h.ws.Join("out.csv"),
	)

	h.ws.AssertFileEquals("out.csv", `name,joined,status
Ada Lovelace,2015-12-10,
Grace Hopper,2016-12-09,active
O'Brien's Cafe,,
`)
	assert.Empty(t, h.errOut.String())
	assert.False(t, h.Dirty())
}

func TestReadReportsShape(t *testing.T) {
	h := newHarness(t, nil)
	h.mustRun(t, "read "+h.ws.Join("ragged.csv"))

	assert.Contains(t, h.out.String(), "(3 rows, 3 columns)")
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2", ""}, {"x", "", ""}}, h.Table().Rows())
}

func TestReadUsesConfiguredPadding(t *testing.T) {
	h := newHarness(t, nil)
	h.opts.Padding = "NULL"
	h.mustRun(t, "read "+h.ws.Join("ragged.csv"))

	assert.Equal(t, []string{"x", "NULL", "NULL"}, h.Table().Rows()[2])
}

func TestReadMissingFile(t *testing.T) {
	h := newHarness(t, nil)
	err := h.Run("read " + h.ws.Join("missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestWriteToStdout(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t, "reorder 2 0", "slice 0 0")
	h.out.Reset()

	h.mustRun(t, "write")
	assert.Equal(t, "city\nlondon\nnew york\ndublin\n", h.out.String())
}

func TestExecuteReportsErrorsAndContinues(t *testing.T) {
	h := newHarness(t, nil)

	assert.False(t, h.Execute("frobnicate 1"))
	assert.Contains(t, h.errOut.String(), "✗ unknown command \"frobnicate\"")
	assert.Equal(t, 1, strings.Count(h.errOut.String(), "\n"))

	h.errOut.Reset()
	assert.False(t, h.Execute("titleize 0"))
	assert.Equal(t, "✗ no data loaded\n", h.errOut.String())

	h.errOut.Reset()
	h.readPeople(t)
	assert.False(t, h.Execute("drop 9"))
	assert.Contains(t, h.errOut.String(), "column 9 out of range (valid range: 0-3)")
	assert.Equal(t, 4, h.Table().NumCols())
}

func TestErrorKindsArePreserved(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)

	var colErr *table.ColumnIndexError
	require.True(t, errors.As(h.Run("titleize 7"), &colErr))
	assert.Equal(t, 7, colErr.Index)

	var dateErr *table.DateFormatError
	require.True(t, errors.As(h.Run("date-format %Y-%m-%d %d 1"), &dateErr))
	assert.Equal(t, "12/10/2015", dateErr.Value)

	var malformed *table.MalformedInputError
	assert.True(t, errors.As(h.Run("slice 1"), &malformed))
	assert.True(t, errors.As(h.Run(`substitute "unterminated 1`), &malformed))
	assert.True(t, errors.As(h.Run("drop one"), &malformed))
}

func TestQuitAndAliases(t *testing.T) {
	h := newHarness(t, nil)
	assert.False(t, h.Done())
	assert.True(t, h.Execute("exit"))
	assert.True(t, h.Done())

	h = newHarness(t, nil)
	assert.True(t, h.Execute("  quit  "))
}

func TestQuitWarnsAboutUnsavedChanges(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	assert.True(t, h.Dirty())

	h.out.Reset()
	h.mustRun(t, "quit")
	assert.Contains(t, h.out.String(), "Unsaved changes discarded")
}

func TestHistoryRecordsEveryAcceptedLine(t *testing.T) {
	h := newHarness(t, nil)
	h.Execute("")
	h.Execute("   ")
	h.Execute("# a comment")
	h.Execute("print")
	h.Execute("drop 1")
	h.Execute("nonsense")

	assert.Equal(t, []string{"print", "drop 1", "nonsense"}, h.History().Lines())

	h.out.Reset()
	h.mustRun(t, "history")
	assert.Equal(t, "print\ndrop 1\nnonsense\nhistory\n", h.out.String())
}

func TestHistoryRecordsUnexpandedLine(t *testing.T) {
	h := newHarness(t, map[string]string{"DATA": "unused"})
	h.Execute("read $DATA/people.csv")
	assert.Equal(t, []string{"read $DATA/people.csv"}, h.History().Lines())
}

func TestTemplateSubstitution(t *testing.T) {
	h := newHarness(t, nil)
	h.vars = map[string]string{"DIR": h.ws.Path, "COL": "0"}

	h.mustRun(t, "read ${DIR}/people.csv", "set-headings", "titleize $COL")
	assert.Equal(t, "Ada Lovelace", h.Table().Rows()[0][0])
}

func TestQuotedArguments(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t, `sub "new york" 'New York, NY' 2`)
	assert.Equal(t, "New York, NY", h.Table().Rows()[1][2])
}

func TestHistoryExportReplays(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t, "titleize 0,2", "reorder 2 0", "history "+h.ws.Join("session.txt"))
	want := h.Table().Rows()

	lines, err := history.ReadScript(h.ws.Join("session.txt"))
	require.NoError(t, err)
	require.Len(t, lines, 5)

	replay := newHarness(t, nil)
	for _, line := range lines {
		require.NoError(t, replay.Run(line))
	}
	assert.Equal(t, want, replay.Table().Rows())
	assert.Equal(t, []string{"city", "name"}, replay.Table().Headings())
}

func TestSetHeadingsExplicit(t *testing.T) {
	h := newHarness(t, nil)
	h.mustRun(t, "read "+h.ws.Join("ragged.csv"))

	var malformed *table.MalformedInputError
	assert.True(t, errors.As(h.Run("set-headings a b"), &malformed))
	assert.False(t, h.Table().HasHeadings())

	h.mustRun(t, `headings id "Unit Price" x`, "slugify-headings")
	assert.Equal(t, []string{"id", "unit_price", "x"}, h.Table().Headings())
	assert.Equal(t, 3, h.Table().NumRows(), "explicit headings keep the first row")

	h.mustRun(t, "drop-headings")
	assert.False(t, h.Table().HasHeadings())
	assert.ErrorIs(t, h.Run("slugify-headings"), table.ErrNoHeadings)
}

func TestMultiColumnTransformChecksAllColumnsFirst(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	before := h.Table().Rows()

	require.Error(t, h.Run("titleize 0 9"))
	assert.Equal(t, before, h.Table().Rows())
}

func TestDuplicateColumnsTransformOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t, "date-format %m/%d/%Y %Y-%m-%d 1 1")
	assert.Equal(t, "2015-12-10", h.Table().Rows()[0][1])
}

func TestSlugifyAndPad(t *testing.T) {
	h := newHarness(t, nil)
	h.readPeople(t)
	h.mustRun(t, "slugify 0")
	assert.Equal(t, "ada-lovelace", h.Table().Rows()[0][0])

	h.mustRun(t, "read "+h.ws.Join("ragged.csv"), "pad NULL")
	assert.Equal(t, []string{"x", "", ""}, h.Table().Rows()[2], "rows are already padded after read")
}

func TestPrintAndInfo(t *testing.T) {
	h := newHarness(t, nil)
	h.mustRun(t, "print")
	assert.Contains(t, h.out.String(), "Table is empty")

	h.readPeople(t)
	h.out.Reset()
	h.mustRun(t, "show")
	assert.Contains(t, h.out.String(), "0: name")
	assert.Contains(t, h.out.String(), "3: status")
	assert.Contains(t, h.out.String(), "ada lovelace")

	h.out.Reset()
	h.mustRun(t, "info")
	assert.Contains(t, h.out.String(), "3 rows, 4 columns")
	assert.Contains(t, h.out.String(), "headings: name, joined, city, status")
}

func TestPrintClipsToConfiguredWidth(t *testing.T) {
	h := newHarness(t, nil)
	h.opts.MaxFieldWidth = 3
	h.readPeople(t)
	h.out.Reset()
	h.mustRun(t, "print")
	assert.Contains(t, h.out.String(), "ada...")
	assert.NotContains(t, h.out.String(), "lovelace")
}

func TestHelp(t *testing.T) {
	h := newHarness(t, nil)
	h.mustRun(t, "help")
	assert.Contains(t, h.out.String(), "`drop <col>...`")
	assert.Contains(t, h.out.String(), "alias: load")

	h.out.Reset()
	h.mustRun(t, "? sub")
	assert.Contains(t, h.out.String(), "# substitute")
	assert.Contains(t, h.out.String(), "**Aliases:** sub")

	assert.Error(t, h.Run("help frobnicate"))
}

func TestJournalFailureDoesNotStopCommand(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := NewSession(SessionConfig{History: history.New(filepath.Join(blocker, "history"))})
	require.NoError(t, s.Run("print"))
	assert.Equal(t, []string{"print"}, s.History().Lines())
}

func TestSessionWriteKeepsEmptySingleColumnRows(t *testing.T) {
	h := newHarness(t, nil)
	h.ws.WriteFile("scores.csv", "name,score\nann,1\nbob,\ncid,3\n")
	out := h.ws.Join("scores-out.csv")

	h.mustRun(t,
		"read "+h.ws.Join("scores.csv"),
		"slice 1 1",
		"write "+out,
		"read "+out,
	)
	h.ws.AssertFileEquals("scores-out.csv", "score\n1\n\"\"\n3\n")
	assert.Equal(t, [][]string{{"score"}, {"1"}, {""}, {"3"}}, h.Table().Rows())
}
