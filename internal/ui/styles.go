package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent colors the prompt, file paths, help headings and the heading
// row of printed tables unless [ui] accent says otherwise.
const DefaultAccent = "#A78BFA"

var (
	accentColor = DefaultAccent

	// Accent styles the prompt and file paths.
	Accent = accentStyle(DefaultAccent)

	// TableHeader styles the "<index>: <heading>" row of a printed table.
	TableHeader = tableHeaderStyle(DefaultAccent)

	// Muted is for hints and table borders.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// ParseColor validates an accent setting. It accepts an ANSI code ("0" to
// "255") or a hex color ("#RRGGBB" or "#RGB", returned as lowercase
// "#rrggbb"). "none" and "off" return "" to turn the accent off, and an
// empty value returns DefaultAccent.
func ParseColor(value string) (string, error) {
	v := strings.TrimSpace(value)
	switch strings.ToLower(v) {
	case "":
		return DefaultAccent, nil
	case "none", "off":
		return "", nil
	}

	if hex, ok := strings.CutPrefix(v, "#"); ok {
		hex = strings.ToLower(hex)
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", fmt.Errorf("color %q: hex colors need 3 or 6 digits", value)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("color %q: not a hex color", value)
		}
		return "#" + hex, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return "", fmt.Errorf("color %q: want an ANSI code (0-255), #RRGGBB or none", value)
	}
	if n < 0 || n > 255 {
		return "", fmt.Errorf("color %q: ANSI codes run from 0 to 255", value)
	}
	return strconv.Itoa(n), nil
}

// ConfigureTheme applies the [ui] accent setting. An invalid value keeps the
// current theme; config validation reports it before this is called.
func ConfigureTheme(accent string) {
	color, err := ParseColor(accent)
	if err != nil {
		return
	}
	accentColor = color
	Accent = accentStyle(color)
	TableHeader = tableHeaderStyle(color)
}

// AccentColor returns the accent in use, or false when it is turned off.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

func accentStyle(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func tableHeaderStyle(color string) lipgloss.Style {
	return accentStyle(color).Bold(true).Padding(0, 1)
}
