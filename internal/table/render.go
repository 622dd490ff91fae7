package table

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/aidanlsb/csvplait/internal/ui"
)

// DefaultMaxFieldWidth is the clip width used by the print command.
const DefaultMaxFieldWidth = 25

// Ellipsis marks a clipped field.
const Ellipsis = "..."

// PrettyRender draws the table with each heading prefixed by its column index
// ("0: name"), or just the index when no headings are set. Fields longer than
// maxFieldWidth runes are clipped and end in Ellipsis; maxFieldWidth <= 0
// disables clipping. Returns "" when the table has no columns.
func (t *Table) PrettyRender(maxFieldWidth int) string {
	labels := t.headingLabels()
	if len(labels) == 0 {
		return ""
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		clipped := make([]string, len(row))
		for j, field := range row {
			clipped[j] = Clip(field, maxFieldWidth)
		}
		rows[i] = clipped
	}

	headerStyle := ui.TableHeader
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(ui.Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(labels...).
		Rows(rows...)

	return tbl.Render()
}

func (t *Table) headingLabels() []string {
	if t.headings != nil {
		labels := make([]string, len(t.headings))
		for i, h := range t.headings {
			labels[i] = strconv.Itoa(i) + ": " + h
		}
		return labels
	}
	labels := make([]string, t.numCols)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// Clip shortens s to width runes followed by Ellipsis.
func Clip(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width]) + Ellipsis
}
