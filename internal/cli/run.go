package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/csvplait/internal/commands"
	"github.com/aidanlsb/csvplait/internal/history"
)

var runCmd = &cobra.Command{
	Use:   "run <script> [file]",
	Short: "Run the command lines in a script, stopping at the first error",
	Long: `Runs each line of script as if it were typed at the prompt. A saved
history ("history session.txt") is a valid script. If file is given it is
read before the script starts.

The first failing line stops the run and the exit status is non-zero.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := history.ReadScript(args[0])
		if err != nil {
			return err
		}

		sess := newSession(sessionOptions{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()})
		if len(args) == 2 {
			if err := sess.Run(readCommand(args[1])); err != nil {
				return err
			}
		}
		return runScript(sess, args[0], lines)
	},
}

// runScript executes lines in order and returns the first failure, labelled
// with its line number.
func runScript(sess *commands.Session, name string, lines []string) error {
	for i, line := range lines {
		if err := sess.Run(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, i+1, err)
		}
		if sess.Done() {
			return nil
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
