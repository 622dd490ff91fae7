// Package config handles csvplait configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"

	"github.com/aidanlsb/csvplait/internal/table"
	"github.com/aidanlsb/csvplait/internal/ui"
)

// Config represents the csvplait configuration file.
type Config struct {
	// Delimiter is the single-character field separator used to read and
	// write CSV. Defaults to ",".
	Delimiter string `toml:"delimiter"`

	// CRLF writes "\r\n" line endings instead of "\n".
	CRLF bool `toml:"crlf"`

	// Padding fills short rows after `read`.
	Padding string `toml:"padding"`

	// MaxFieldWidth clips fields in `print`. Zero disables clipping.
	MaxFieldWidth int `toml:"max_field_width"`

	// Prompt is shown before each interactive line.
	Prompt string `toml:"prompt"`

	// HistoryFile is an optional journal that every accepted line is appended to.
	HistoryFile string `toml:"history_file"`

	// Vars are extra $NAME substitutions, layered over the environment.
	Vars map[string]string `toml:"vars"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent colors the prompt, file paths, help headings and printed table
	// headings. ANSI codes ("0" to "255"), hex colors ("#RRGGBB") or "none".
	// Empty keeps ui.DefaultAccent.
	Accent string `toml:"accent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Delimiter:     ",",
		MaxFieldWidth: table.DefaultMaxFieldWidth,
		Prompt:        "> ",
	}
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Keys missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks values the TOML decoder cannot.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	switch c.Delimiter {
	case `"`, "\r", "\n", "�":
		return fmt.Errorf("delimiter %q is not allowed", c.Delimiter)
	}
	if c.MaxFieldWidth < 0 {
		return fmt.Errorf("max_field_width must not be negative, got %d", c.MaxFieldWidth)
	}
	if _, err := ui.ParseColor(c.UI.Accent); err != nil {
		return fmt.Errorf("ui.accent: %w", err)
	}
	return nil
}

// Dialect returns the CSV dialect described by the config.
func (c *Config) Dialect() table.Dialect {
	d := table.DefaultDialect()
	if r, size := utf8.DecodeRuneInString(c.Delimiter); size > 0 {
		d.Comma = r
	}
	d.UseCRLF = c.CRLF
	return d
}

// HistoryPath returns the journal path with a leading "~/" expanded, or ""
// when journaling is off.
func (c *Config) HistoryPath() string {
	path := strings.TrimSpace(c.HistoryFile)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// DefaultPath returns the default config file path.
// Checks ~/.config/csvplait/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "csvplait", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/csvplait/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "csvplait", "config.toml"), nil
}

const defaultConfig = `# csvplait configuration

# Field separator for read and write (a single character)
# delimiter = ","
#
# Write Windows line endings
# crlf = false
#
# Value used to fill short rows after read
# padding = ""
#
# Clip width for print (0 disables clipping)
# max_field_width = 25
#
# prompt = "> "
#
# Append every accepted command line to this file
# history_file = "~/.local/state/csvplait/history"

# Extra $NAME substitutions for command lines
# [vars]
# out = "/tmp/out.csv"

# Accent for the prompt, paths, help and table headings.
# ANSI color code (0-255), hex (#RRGGBB) or "none".
# [ui]
# accent = "39"
`

// CreateDefault writes a commented default config to path if nothing is
// there yet. It returns true when a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(defaultConfig)); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
