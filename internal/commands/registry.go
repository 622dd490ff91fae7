// Package commands provides the csvplait command registry and the session
// that dispatches command lines onto a table.
//
// The registry is the single source of truth for command metadata. It drives
// argument count checks, alias lookup, tab completion and the help text.
package commands

import (
	"sort"
	"strings"
)

// Meta defines metadata for a session command.
type Meta struct {
	Name        string    // Command name (e.g., "drop", "titleize")
	Aliases     []string  // Alternative names accepted at the prompt
	Description string    // Short description
	LongDesc    string    // Long description (for help <command>)
	Args        []ArgMeta // Positional arguments
	Examples    []string  // Usage examples

	// MutatesTable is set for commands that change the loaded table.
	MutatesTable bool
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string   // Argument name
	Description string   // Description
	Required    bool     // Is this argument required?
	Variadic    bool     // Accepts one or more values; only valid on the last argument
	Completions []string // Static completions (if any)
	DynamicComp string   // Dynamic completion type: "files", "commands"
}

// Registry holds all registered commands, keyed by canonical name.
var Registry = map[string]Meta{
	"read": {
		Name:        "read",
		Aliases:     []string{"load"},
		Description: "Load a CSV file, replacing the current table",
		LongDesc: `Reads the file with the configured delimiter and pads short rows
with the configured padding value. Any headings are cleared; use
set-headings to promote the first row.`,
		Args: []ArgMeta{
			{Name: "path", Description: "CSV file to read", Required: true, DynamicComp: "files"},
		},
		Examples: []string{"read people.csv", "read $HOME/data/export.csv"},
	},
	"write": {
		Name:        "write",
		Description: "Write the table as CSV to a file or standard output",
		LongDesc: `Writes the headings (if set) and every row. Without a path the CSV
is printed. Files are replaced atomically.`,
		Args: []ArgMeta{
			{Name: "path", Description: "Destination file (default: standard output)", DynamicComp: "files"},
		},
		Examples: []string{"write", "write cleaned.csv"},
	},
	"print": {
		Name:        "print",
		Aliases:     []string{"show"},
		Description: "Show the table with column indices",
		Examples:    []string{"print"},
	},
	"info": {
		Name:        "info",
		Description: "Show row and column counts and the headings",
		Examples:    []string{"info"},
	},
	"set-headings": {
		Name:        "set-headings",
		Aliases:     []string{"headings"},
		Description: "Use the first row, or the given names, as headings",
		LongDesc: `Without arguments the first data row is removed and used as the
heading row. With arguments, one name per column is required.`,
		Args: []ArgMeta{
			{Name: "heading", Description: "Heading for each column", Variadic: true},
		},
		Examples: []string{"set-headings", `set-headings id name "unit price"`},
	},
	"drop-headings": {
		Name:        "drop-headings",
		Description: "Discard the heading row",
		Examples:    []string{"drop-headings"},
	},
	"slugify-headings": {
		Name:        "slugify-headings",
		Description: "Rewrite headings as lowercase identifiers",
		LongDesc:    `"Unit Price" becomes unit_price.`,
		Examples:    []string{"slugify-headings"},
	},
	"slice": {
		Name:        "slice",
		Description: "Keep only the columns from start to end, inclusive",
		Args: []ArgMeta{
			{Name: "start", Description: "First column to keep", Required: true},
			{Name: "end", Description: "Last column to keep", Required: true},
		},
		Examples: []string{"slice 1 3"},
	},
	"drop": {
		Name:        "drop",
		Description: "Remove columns",
		LongDesc:    `Indices refer to the table before the command runs.`,
		Args: []ArgMeta{
			{Name: "col", Description: "Columns to remove (1 3, 1,3 or 1-3)", Required: true, Variadic: true},
		},
		Examples: []string{"drop 0", "drop 1 3", "drop 2-4"},
	},
	"reorder": {
		Name:        "reorder",
		Description: "Rebuild the table from the listed columns, in order",
		LongDesc: `Column i of the result is the listed column i of the input. Columns
left out are dropped and repeated columns are duplicated.`,
		Args: []ArgMeta{
			{Name: "col", Description: "New column order", Required: true, Variadic: true},
		},
		Examples: []string{"reorder 2 0 1", "reorder 0 0 1"},
	},
	"date-format": {
		Name:        "date-format",
		Aliases:     []string{"dateformat"},
		Description: "Convert dates from one strftime pattern to another",
		LongDesc: `Empty fields are left alone. A value that does not match the source
pattern stops the command.`,
		Args: []ArgMeta{
			{Name: "from", Description: "strftime pattern of the current values", Required: true},
			{Name: "to", Description: "strftime pattern to write", Required: true},
			{Name: "col", Description: "Columns to convert", Required: true, Variadic: true},
		},
		Examples: []string{`date-format %m/%d/%Y %Y-%m-%d 2`, `date-format "%d %b %Y" %F 1 4`},
	},
	"titleize": {
		Name:        "titleize",
		Description: "Title-case every value in the columns",
		Args: []ArgMeta{
			{Name: "col", Description: "Columns to title-case", Required: true, Variadic: true},
		},
		Examples: []string{"titleize 1", "titleize 1,2"},
	},
	"substitute": {
		Name:        "substitute",
		Aliases:     []string{"sub"},
		Description: "Replace values that exactly match a string",
		Args: []ArgMeta{
			{Name: "old", Description: "Value to replace", Required: true},
			{Name: "new", Description: "Replacement value", Required: true},
			{Name: "col", Description: "Columns to search", Required: true, Variadic: true},
		},
		Examples: []string{`substitute N/A "" 3`, `sub yes true 4-6`},
	},
	"slugify": {
		Name:        "slugify",
		Description: "Replace every value in the columns with its URL slug",
		Args: []ArgMeta{
			{Name: "col", Description: "Columns to slugify", Required: true, Variadic: true},
		},
		Examples: []string{"slugify 1"},
	},
	"pad": {
		Name:        "pad",
		Description: "Fill short rows up to the table width",
		Args: []ArgMeta{
			{Name: "value", Description: "Fill value (default: configured padding)"},
		},
		Examples: []string{"pad", "pad NULL"},
	},
	"history": {
		Name:        "history",
		Description: "Show or save the command lines entered so far",
		LongDesc: `A saved history can be replayed with: csvplait run <path>`,
		Args: []ArgMeta{
			{Name: "path", Description: "File to save the history to", DynamicComp: "files"},
		},
		Examples: []string{"history", "history session.txt"},
	},
	"help": {
		Name:        "help",
		Aliases:     []string{"?"},
		Description: "List commands, or describe one",
		Args: []ArgMeta{
			{Name: "command", Description: "Command to describe", DynamicComp: "commands"},
		},
		Examples: []string{"help", "help date-format"},
	},
	"quit": {
		Name:        "quit",
		Aliases:     []string{"exit"},
		Description: "End the session without writing",
		Examples:    []string{"quit"},
	},
}

// aliases maps every alias to its canonical command name.
var aliases = buildAliases()

func buildAliases() map[string]string {
	out := make(map[string]string)
	for name, meta := range Registry {
		for _, alias := range meta.Aliases {
			out[alias] = name
		}
	}
	return out
}

// Lookup resolves a command name or alias to its metadata.
func Lookup(name string) (Meta, bool) {
	name = strings.TrimSpace(name)
	if meta, ok := Registry[name]; ok {
		return meta, true
	}
	if canonical, ok := aliases[name]; ok {
		return Registry[canonical], true
	}
	return Meta{}, false
}

// AllCommandNames returns all registered command names, sorted.
func AllCommandNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the one-line synopsis for meta, e.g. "drop <col>...".
func Usage(meta Meta) string {
	use := meta.Name
	for _, arg := range meta.Args {
		if arg.Required {
			use += " <" + arg.Name + ">"
		} else {
			use += " [" + arg.Name + "]"
		}
		if arg.Variadic {
			use += "..."
		}
	}
	return use
}

// argBounds returns the minimum and maximum argument count. max is -1 when
// the last argument is variadic.
func argBounds(meta Meta) (min, max int) {
	for _, arg := range meta.Args {
		if arg.Required {
			min++
		}
	}
	max = len(meta.Args)
	if n := len(meta.Args); n > 0 && meta.Args[n-1].Variadic {
		max = -1
	}
	return min, max
}
