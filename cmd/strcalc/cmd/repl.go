package cmd

import (
	"github.com/spf13/cobra"

	sclog "github.com/msto63/strcalc/foundation/core/log"
	"github.com/msto63/strcalc/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts the interactive calculator",
	Long: `Starts an interactive session that evaluates every entered line.

Type \n for a line break inside an input, e.g. //;\n1;2

Keys:
  Enter     Evaluate the line
  Up/Down   Browse previous lines
  Ctrl+L    Clear the results
  Esc       Quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// log lines on stderr would tear the alt screen
	return repl.Run(newCalculator(app.logger.WithLevel(sclog.LevelOff)))
}
