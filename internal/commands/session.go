package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aidanlsb/csvplait/internal/history"
	"github.com/aidanlsb/csvplait/internal/table"
	"github.com/aidanlsb/csvplait/internal/template"
	"github.com/aidanlsb/csvplait/internal/ui"
)

// Options are the per-session settings taken from configuration.
type Options struct {
	// Padding fills short rows after read.
	Padding string
	// MaxFieldWidth clips fields in print; <= 0 disables clipping.
	MaxFieldWidth int
	// Dialect is used to read and write CSV.
	Dialect table.Dialect
	// HelpWidth is the wrap width for rendered help.
	HelpWidth int
	// RenderHelp renders help markdown for a terminal; otherwise the raw
	// markdown is printed.
	RenderHelp bool
}

// DefaultOptions returns the options used when no configuration is loaded.
func DefaultOptions() Options {
	return Options{
		MaxFieldWidth: table.DefaultMaxFieldWidth,
		Dialect:       table.DefaultDialect(),
	}
}

// SessionConfig wires a Session to its collaborators. Nil fields get
// defaults: discarded output, an in-memory history and a no-op logger.
type SessionConfig struct {
	Out     io.Writer
	Err     io.Writer
	Options Options
	History *history.Log
	Vars    map[string]string
	Logger  *slog.Logger
}

// Session owns one table and executes command lines against it.
// A Session is not safe for concurrent use.
type Session struct {
	table   *table.Table
	history *history.Log
	vars    map[string]string
	out     io.Writer
	errOut  io.Writer
	opts    Options
	logger  *slog.Logger

	dirty bool
	done  bool
}

// NewSession creates a session with an empty table.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		history: cfg.History,
		vars:    cfg.Vars,
		out:     cfg.Out,
		errOut:  cfg.Err,
		opts:    cfg.Options,
		logger:  cfg.Logger,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.errOut == nil {
		s.errOut = s.out
	}
	if s.history == nil {
		s.history = history.New("")
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.table = table.NewWithDialect(s.opts.Dialect)
	return s
}

// Table returns the session's table.
func (s *Session) Table() *table.Table {
	return s.table
}

// History returns the log of accepted command lines.
func (s *Session) History() *history.Log {
	return s.history
}

// Done reports whether quit has been executed.
func (s *Session) Done() bool {
	return s.done
}

// Dirty reports whether the table has changed since it was last read or
// written to a file.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Execute runs one command line, printing a one-line diagnostic on failure.
// It returns true once the session should end.
func (s *Session) Execute(line string) (quit bool) {
	if err := s.Run(line); err != nil {
		fmt.Fprintln(s.errOut, ui.Error(err.Error()))
	}
	return s.done
}

// Run runs one command line and returns its error. Blank lines and lines
// starting with "#" are ignored. Every other line is recorded in the history
// before it is interpreted, whether or not it succeeds.
func (s *Session) Run(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if err := s.history.Record(line); err != nil {
		s.logger.Warn("history journal write failed", "error", err)
	}

	expanded := template.Apply(line, s.vars)
	fields, err := shellquote.Split(expanded)
	if err != nil {
		return &table.MalformedInputError{Reason: "cannot parse command line", Err: err}
	}
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	meta, ok := Lookup(name)
	if !ok {
		return table.Malformed("unknown command %q (type help for a list)", name)
	}
	if err := checkArity(meta, args); err != nil {
		return err
	}

	h, ok := handlers[meta.Name]
	if !ok {
		return fmt.Errorf("command %q has no handler", meta.Name)
	}

	s.logger.Debug("dispatch", "command", meta.Name, "args", args)
	if err := h(s, args); err != nil {
		s.logger.Info("command failed", "command", meta.Name, "error", err)
		return err
	}
	if meta.MutatesTable {
		s.dirty = true
	}
	return nil
}
