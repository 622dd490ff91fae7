package commands

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/csvplait/internal/table"
	"github.com/aidanlsb/csvplait/internal/ui"
)

// handler runs a command with arguments whose count has already been checked.
type handler func(s *Session, args []string) error

var handlers = map[string]handler{
	"read":             cmdRead,
	"write":            cmdWrite,
	"print":            cmdPrint,
	"info":             cmdInfo,
	"set-headings":     cmdSetHeadings,
	"drop-headings":    cmdDropHeadings,
	"slugify-headings": cmdSlugifyHeadings,
	"slice":            cmdSlice,
	"drop":             cmdDrop,
	"reorder":          cmdReorder,
	"date-format":      cmdDateFormat,
	"titleize":         cmdTitleize,
	"substitute":       cmdSubstitute,
	"slugify":          cmdSlugify,
	"pad":              cmdPad,
	"history":          cmdHistory,
	"help":             cmdHelp,
	"quit":             cmdQuit,
}

func cmdRead(s *Session, args []string) error {
	path := args[0]
	if err := s.table.ReadFile(path); err != nil {
		return err
	}
	s.table.PadColumns(s.opts.Padding)
	s.dirty = false

	fmt.Fprintln(s.out, ui.Successf("Loaded %s (%s, %s)",
		ui.FilePath(path),
		ui.Count(s.table.NumRows(), "row", "rows"),
		ui.Count(s.table.NumCols(), "column", "columns")))
	return nil
}

func cmdWrite(s *Session, args []string) error {
	if len(args) == 0 {
		_, err := s.table.WriteTo(s.out)
		return err
	}

	path := args[0]
	if err := s.table.WriteFile(path); err != nil {
		return err
	}
	s.dirty = false

	fmt.Fprintln(s.out, ui.Successf("Wrote %s (%s)",
		ui.FilePath(path), ui.Count(s.table.NumRows(), "row", "rows")))
	return nil
}

func cmdPrint(s *Session, _ []string) error {
	rendered := s.table.PrettyRender(s.opts.MaxFieldWidth)
	if rendered == "" {
		fmt.Fprintln(s.out, ui.Info("Table is empty"))
		return nil
	}
	fmt.Fprintln(s.out, rendered)
	return nil
}

func cmdInfo(s *Session, _ []string) error {
	t := s.table
	fmt.Fprintf(s.out, "%s, %s\n",
		ui.Count(t.NumRows(), "row", "rows"),
		ui.Count(t.NumCols(), "column", "columns"))

	if t.HasHeadings() {
		fmt.Fprintf(s.out, "headings: %s\n", strings.Join(t.Headings(), ", "))
	} else {
		fmt.Fprintln(s.out, ui.Hint("no headings"))
	}
	return nil
}

func cmdSetHeadings(s *Session, args []string) error {
	if len(args) == 0 {
		return s.table.SetHeadings(nil)
	}
	if s.table.NumCols() > 0 && len(args) != s.table.NumCols() {
		return table.Malformed("expected %d headings, got %d", s.table.NumCols(), len(args))
	}
	return s.table.SetHeadings(args)
}

func cmdDropHeadings(s *Session, _ []string) error {
	s.table.DropHeadings()
	return nil
}

func cmdSlugifyHeadings(s *Session, _ []string) error {
	return s.table.SlugifyHeadings()
}

func cmdSlice(s *Session, args []string) error {
	start, err := ParseColumn(args[0])
	if err != nil {
		return err
	}
	end, err := ParseColumn(args[1])
	if err != nil {
		return err
	}
	return s.table.SliceColumns(start, end)
}

func cmdDrop(s *Session, args []string) error {
	cols, err := ParseColumns(args)
	if err != nil {
		return err
	}
	return s.table.DropColumns(cols...)
}

func cmdReorder(s *Session, args []string) error {
	cols, err := ParseColumns(args)
	if err != nil {
		return err
	}
	return s.table.ReorderColumns(cols)
}

func cmdDateFormat(s *Session, args []string) error {
	from, to := args[0], args[1]
	return eachColumn(s, args[2:], func(col int) error {
		return s.table.DateFormat(col, from, to)
	})
}

func cmdTitleize(s *Session, args []string) error {
	return eachColumn(s, args, s.table.Titleize)
}

func cmdSubstitute(s *Session, args []string) error {
	match, replacement := args[0], args[1]
	return eachColumn(s, args[2:], func(col int) error {
		return s.table.SubstituteString(col, match, replacement)
	})
}

func cmdSlugify(s *Session, args []string) error {
	return eachColumn(s, args, s.table.Slugify)
}

// eachColumn applies fn once per distinct column, after checking every
// column against the table.
func eachColumn(s *Session, args []string, fn func(col int) error) error {
	cols, err := ParseColumns(args)
	if err != nil {
		return err
	}
	if err := s.table.CheckColumns(cols...); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(cols))
	for _, col := range cols {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		if err := fn(col); err != nil {
			return err
		}
	}
	return nil
}

func cmdPad(s *Session, args []string) error {
	padding := s.opts.Padding
	if len(args) > 0 {
		padding = args[0]
	}
	s.table.PadColumns(padding)
	return nil
}

func cmdHistory(s *Session, args []string) error {
	if len(args) == 0 {
		_, err := s.history.WriteTo(s.out)
		return err
	}

	path := args[0]
	if err := s.history.Export(path); err != nil {
		return err
	}
	fmt.Fprintln(s.out, ui.Successf("Saved %s to %s",
		ui.Count(s.history.Len(), "line", "lines"), ui.FilePath(path)))
	return nil
}

func cmdQuit(s *Session, _ []string) error {
	if s.dirty {
		fmt.Fprintln(s.out, ui.Hint("Unsaved changes discarded"))
	}
	s.done = true
	return nil
}
