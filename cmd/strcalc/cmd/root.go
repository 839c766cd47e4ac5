package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scerror "github.com/msto63/strcalc/foundation/core/error"
	sclog "github.com/msto63/strcalc/foundation/core/log"
	"github.com/msto63/strcalc/internal/calculator"
	"github.com/msto63/strcalc/pkg/core/config"
	"github.com/msto63/strcalc/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
)

// app holds what PersistentPreRunE prepared for the subcommands
var app struct {
	cfg    *config.Config
	logger *sclog.Logger
	opts   calculator.Options
}

var rootCmd = &cobra.Command{
	Use:   "strcalc",
	Short: "Sums the numbers in delimited text",
	Long: `strcalc sums the numbers embedded in a delimited string.

Numbers are separated by "," or newlines. A first line of the form
//<delimiter> or //[delim1][delim2]... declares custom delimiters.
Negative numbers are rejected and numbers above 1000 are ignored.

Examples:
  strcalc add "1,2,3"
  strcalc add --escapes '//[*][%]\n1*2%3'
  printf '1\n2,3' | strcalc add
  strcalc repl`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failing command's error
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps err to a process exit code: 2 for rejected input,
// 3 for configuration problems, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return scerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .toml or .yaml (default: $STRCALC_CONFIG or ./strcalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console, logfmt")
}

func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.FromConfig("strcalc", cfg.Logging)
	lc.Output = cmd.ErrOrStderr()

	app.cfg = cfg
	app.logger = logging.NewLogger(lc)
	app.opts = calculator.Options{
		UpperBound:       cfg.Calculator.UpperBound,
		DefaultDelimiter: cfg.Calculator.DefaultDelimiter,
	}

	app.logger.Debug("configuration loaded", logging.KV(
		"config", cfgFile,
		"upper_bound", cfg.Calculator.UpperBound,
		"default_delimiter", cfg.Calculator.DefaultDelimiter,
	))
	return nil
}

// newCalculator builds a calculator from the loaded options logging
// through logger
func newCalculator(logger *sclog.Logger) *calculator.Calculator {
	return calculator.New(
		calculator.WithOptions(app.opts),
		calculator.WithLogger(logger.WithName("calculator")),
	)
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
