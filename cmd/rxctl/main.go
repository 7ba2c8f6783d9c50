// Command rxctl is the CLI front end for the regex engine in regex/. It
// is an out-of-scope collaborator relative to the core engine (spec.md
// §1) — a thin shell that compiles a pattern and reports matches,
// structured the way opal-lang-opal's runtime/cli/harness.go builds a
// cobra root command with persistent flags and one subcommand per verb.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "rxctl",
		Short: "Compile and test Kleene-subset regular expressions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				pterm.DisableColor()
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newReplCmd())

	return root
}

func printResult(pattern, input string, matched bool) {
	if matched {
		pterm.Success.Printfln("%q matches %q", input, pattern)
		return
	}
	pterm.Error.Printfln("%q does not match %q", input, pattern)
}
