package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/aidanlsb/csvplait/internal/commands"
	"github.com/aidanlsb/csvplait/internal/ui"
)

// maxLineSize bounds a single input line when reading from a pipe.
const maxLineSize = 1024 * 1024

func runInteractive(args []string) error {
	prompt := "> "
	if cfg != nil {
		prompt = cfg.Prompt
	}

	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return runTerminal(os.Stdin, os.Stdout, prompt, args)
	}

	sess := newSession(sessionOptions{out: os.Stdout, errOut: os.Stderr, journal: true})
	if len(args) == 1 {
		sess.Execute(readCommand(args[0]))
	}
	return runLoop(sess, os.Stdin)
}

// runLoop executes lines from in until end of input or quit.
func runLoop(sess *commands.Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if sess.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// runTerminal runs the session with a raw-mode line editor that supports
// arrow-key recall and tab completion.
func runTerminal(in, out *os.File, prompt string, args []string) error {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debug("raw mode unavailable, falling back to line input", "error", err)
		sess := newSession(sessionOptions{out: out, errOut: os.Stderr, journal: true})
		if len(args) == 1 {
			sess.Execute(readCommand(args[0]))
		}
		return runLoop(sess, in)
	}
	defer term.Restore(fd, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(screen, ui.Accent.Render(prompt))
	t.AutoCompleteCallback = commands.Complete

	display := ui.NewDisplayContext(out)
	if width, height, err := term.GetSize(int(out.Fd())); err == nil {
		_ = t.SetSize(width, height)
	}

	// The terminal translates "\n" to "\r\n" while in raw mode, so all
	// session output goes through it.
	sess := newSession(sessionOptions{
		out:        t,
		errOut:     t,
		journal:    true,
		renderHelp: true,
		helpWidth:  display.AvailableWidth(ui.HelpMargin),
	})
	if len(args) == 1 {
		sess.Execute(readCommand(args[0]))
	}

	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t)
			return nil
		}
		if err != nil {
			return err
		}
		if sess.Execute(line) {
			return nil
		}
	}
}
