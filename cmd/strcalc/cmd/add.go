package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	scerror "github.com/msto63/strcalc/foundation/core/error"
	"github.com/msto63/strcalc/foundation/utils/filex"
	scstringx "github.com/msto63/strcalc/foundation/utils/stringx"
	scslicex "github.com/msto63/strcalc/foundation/utils/slicex"
	"github.com/msto63/strcalc/pkg/core/config"
)

// maxFileInput bounds inputs read with --file
const maxFileInput = 1 << 20

var (
	addEscapes   bool
	addOutput    string
	addBreakdown bool
	addFiles     []string
)

var addCmd = &cobra.Command{
	Use:   "add [input...]",
	Short: "Sums the numbers of each input",
	Long: `Evaluates every argument as one input and prints its sum.
Without arguments, or with "-", the whole of stdin is one input.
Each --file adds the contents of a file as one more input.

Examples:
  strcalc add "1,2" "3\n4"
  strcalc add --escapes '//;\n1;2'
  strcalc add --output json --breakdown "2,1001"
  strcalc add --file numbers.txt
  cat numbers.txt | strcalc add`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVarP(&addEscapes, "escapes", "e", false, `interpret \n, \r, \t and \\ in arguments`)
	addCmd.Flags().StringVarP(&addOutput, "output", "o", "", "output format: text, json, yaml (default from config)")
	addCmd.Flags().BoolVarP(&addBreakdown, "breakdown", "b", false, "print numbers, ignored numbers and delimiters")
	addCmd.Flags().StringArrayVarP(&addFiles, "file", "f", nil, "read an input from a file (repeatable)")
}

// evaluation is one rendered result of the add command
type evaluation struct {
	Input      string   `json:"input" yaml:"input"`
	Sum        int      `json:"sum" yaml:"sum"`
	Numbers    []int    `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Ignored    []int    `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Delimiters []string `json:"delimiters,omitempty" yaml:"delimiters,omitempty"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	format := app.cfg.Output.Format
	if cmd.Flags().Changed("output") {
		format = addOutput
	}
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return scerror.New("unsupported output format: " + format).
			WithCode(scerror.CodeInvalidFormat).
			WithOperation("cmd.add")
	}

	inputs, err := collectInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, input := range inputs {
		ev, err := evaluate(input)
		if err != nil {
			return err
		}
		if err := render(out, format, ev); err != nil {
			return err
		}
	}
	return nil
}

// collectInputs returns the arguments, with "-" or no arguments meaning
// the contents of stdin. Stdin and files may use CRLF line endings.
func collectInputs(stdin io.Reader, args []string) ([]string, error) {
	if len(args) == 0 && len(addFiles) == 0 {
		args = []string{"-"}
	}

	inputs := make([]string, 0, len(args)+len(addFiles))
	stdinRead := false
	for _, arg := range args {
		if arg != "-" {
			if addEscapes {
				arg = scstringx.InterpretEscapes(arg)
			}
			inputs = append(inputs, arg)
			continue
		}
		if stdinRead {
			return nil, scerror.New(`stdin ("-") can only be read once`).
				WithCode(scerror.CodeInvalidInput).
				WithOperation("cmd.add")
		}
		stdinRead = true
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, scerror.Wrap(err, "failed to read stdin").
				WithCode(scerror.CodeInternal).
				WithOperation("cmd.add")
		}
		inputs = append(inputs, normalizeNewlines(string(data)))
	}

	for _, path := range addFiles {
		content, err := filex.ReadStringLimit(path, maxFileInput)
		if err != nil {
			return nil, scerror.Wrap(err, "failed to read input file").
				WithCode(scerror.CodeInvalidInput).
				WithOperation("cmd.add").
				WithDetail("path", path)
		}
		inputs = append(inputs, normalizeNewlines(content))
	}
	return inputs, nil
}

// normalizeNewlines turns CRLF line endings into "\n"
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func evaluate(input string) (evaluation, error) {
	reqID := uuid.NewString()
	logger := app.logger.WithRequestID(reqID)
	timer := logger.StartTimer("add").WithField("input", scstringx.Truncate(scstringx.EscapeControl(input), 64, "..."))

	res, err := newCalculator(logger).Evaluate(input)
	if err != nil {
		timer.StopWithError(err)
		return evaluation{}, err
	}
	timer.WithField("sum", res.Sum).Stop()

	ev := evaluation{Input: input, Sum: res.Sum}
	if addBreakdown {
		ev.Numbers = res.Numbers
		ev.Ignored = res.Ignored
		ev.Delimiters = res.Delimiters
	}
	return ev, nil
}

func render(w io.Writer, format string, ev evaluation) error {
	switch format {
	case config.OutputJSON:
		return json.NewEncoder(w).Encode(ev)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ev); err != nil {
			return err
		}
		return enc.Close()
	default:
		if !addBreakdown {
			_, err := fmt.Fprintln(w, ev.Sum)
			return err
		}
		_, err := fmt.Fprintf(w, "sum=%d numbers=[%s] ignored=[%s] delimiters=[%s]\n",
			ev.Sum,
			scslicex.Join(ev.Numbers, " "),
			scslicex.Join(ev.Ignored, " "),
			strings.Join(scslicex.Map(ev.Delimiters, scstringx.EscapeControl), " "))
		return err
	}
}
