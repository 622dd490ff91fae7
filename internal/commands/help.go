package commands

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/csvplait/internal/table"
	"github.com/aidanlsb/csvplait/internal/ui"
)

func cmdHelp(s *Session, args []string) error {
	var doc string
	if len(args) == 0 {
		doc = OverviewMarkdown()
	} else {
		meta, ok := Lookup(args[0])
		if !ok {
			return table.Malformed("unknown command %q", args[0])
		}
		doc = CommandMarkdown(meta)
	}

	if !s.opts.RenderHelp {
		fmt.Fprint(s.out, doc)
		return nil
	}
	rendered, err := ui.RenderHelp(doc, s.opts.HelpWidth)
	if err != nil {
		fmt.Fprint(s.out, doc)
		return nil
	}
	fmt.Fprint(s.out, rendered)
	return nil
}

// OverviewMarkdown lists every command with its synopsis.
func OverviewMarkdown() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	for _, name := range AllCommandNames() {
		meta := Registry[name]
		fmt.Fprintf(&b, "- `%s`: %s", Usage(meta), meta.Description)
		if len(meta.Aliases) > 0 {
			fmt.Fprintf(&b, " (alias: %s)", strings.Join(meta.Aliases, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nColumns are numbered from 0. Lists accept `1 3`, `1,3` and `1-3`.\n")
	b.WriteString("`$NAME` and `${NAME}` are replaced from the environment before a line runs.\n")
	return b.String()
}

// CommandMarkdown describes one command.
func CommandMarkdown(meta Meta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", meta.Name)
	fmt.Fprintf(&b, "`%s`\n\n", Usage(meta))
	b.WriteString(meta.Description + ".\n")
	if meta.LongDesc != "" {
		b.WriteString("\n" + meta.LongDesc + "\n")
	}
	if len(meta.Aliases) > 0 {
		fmt.Fprintf(&b, "\n**Aliases:** %s\n", strings.Join(meta.Aliases, ", "))
	}
	if len(meta.Args) > 0 {
		b.WriteString("\n## Arguments\n\n")
		for _, arg := range meta.Args {
			fmt.Fprintf(&b, "- `%s`: %s\n", arg.Name, arg.Description)
		}
	}
	if len(meta.Examples) > 0 {
		b.WriteString("\n## Examples\n\n```\n")
		for _, ex := range meta.Examples {
			b.WriteString(ex + "\n")
		}
		b.WriteString("```\n")
	}
	return b.String()
}
