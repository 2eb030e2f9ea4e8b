package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/parcom/parcom"
	"github.com/parcom/parcom/json"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "parcom",
	Short: "Demos for the parcom parsing engine",
	Long: `parcom is a parser combinator library.  This command runs the example
grammars shipped with it against real files, mostly to show off the
diagnostics the engine produces on malformed input.`,
	SilenceUsage: true,
}

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Parse a JSON file and print the decoded value",
	Args:  cobra.ExactArgs(1),
	RunE:  runJSON,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	input := string(data)

	value, err := json.Parse(input)
	if err != nil {
		heading := color.New(color.Bold, color.FgRed)
		heading.Fprintf(os.Stderr, "%s: parse error\n", args[0])

		var stack *parcom.Error
		if errors.As(err, &stack) {
			fmt.Fprint(os.Stderr, stack.Render(input))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("failed to parse %s", args[0])
	}

	fmt.Println(value)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
