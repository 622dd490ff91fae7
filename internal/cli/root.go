// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/csvplait/internal/commands"
	"github.com/aidanlsb/csvplait/internal/config"
	"github.com/aidanlsb/csvplait/internal/history"
	"github.com/aidanlsb/csvplait/internal/template"
	"github.com/aidanlsb/csvplait/internal/ui"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string
	noHistory  bool

	// Resolved values
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "csvplait [file]",
	Short: "csvplait - interactive CSV cleanup",
	Long: `csvplait loads a CSV file into memory and lets you reshape it one
command at a time: drop, slice and reorder columns, title-case names,
reformat dates, replace values, then write the result.

Type help at the prompt for the list of commands. Every line you enter is
kept, so a session can be saved with "history <file>" and replayed with
"csvplait run <file>".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = setupLogging(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}

		// Config commands must work even when the file does not parse.
		if cmd.Name() == "version" || (cmd.Parent() != nil && cmd.Parent().Name() == "config") {
			return nil
		}

		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		logger.Debug("config loaded", "path", resolvedConfigPath(), "delimiter", cfg.Delimiter)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(args)
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not append to the configured history file")
}

func resolvedConfigPath() string {
	if strings.TrimSpace(configPath) != "" {
		return configPath
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// sessionOptions describes where a session writes and how help is shown.
type sessionOptions struct {
	out        io.Writer
	errOut     io.Writer
	journal    bool
	renderHelp bool
	helpWidth  int
}

func newSession(opts sessionOptions) *commands.Session {
	c := cfg
	if c == nil {
		c = config.Default()
	}

	journalPath := ""
	if opts.journal && !noHistory {
		journalPath = c.HistoryPath()
	}

	l := logger
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return commands.NewSession(commands.SessionConfig{
		Out: opts.out,
		Err: opts.errOut,
		Options: commands.Options{
			Padding:       c.Padding,
			MaxFieldWidth: c.MaxFieldWidth,
			Dialect:       c.Dialect(),
			HelpWidth:     opts.helpWidth,
			RenderHelp:    opts.renderHelp,
		},
		History: history.New(journalPath),
		Vars:    template.Variables(os.Environ(), c.Vars),
		Logger:  l,
	})
}

// readCommand builds the command line that loads path.
func readCommand(path string) string {
	return "read " + shellquote.Join(path)
}
