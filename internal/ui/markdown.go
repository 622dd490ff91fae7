package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// HelpMargin is the left margin of rendered help.
const HelpMargin = 2

// RenderHelp renders the markdown produced for the help command. Command
// names (level 1 headings) and usage lines (code spans) take the accent,
// section titles such as "Arguments" are muted, and example blocks are
// indented without a frame so they can be copied into the prompt.
func RenderHelp(doc string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(helpStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	out, err := r.Render(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func helpStyle() ansi.StyleConfig {
	var accent *string
	if color, ok := AccentColor(); ok {
		accent = &color
	}
	muted := "8"
	yes := true
	margin := uint(HelpMargin)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{BlockSuffix: "\n"},
			Margin:         &margin,
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: accent, Bold: &yes, BlockSuffix: "\n"},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: &muted, Bold: &yes, BlockSuffix: "\n"},
		},
		List: ansi.StyleList{LevelIndent: 2},
		Item: ansi.StylePrimitive{BlockPrefix: "  "},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: accent},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{Margin: &margin},
		},
		Strong: ansi.StylePrimitive{Bold: &yes},
	}
}
