package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mkpro118/regex-engine-go/regex"
)

// newReplCmd starts an interactive session: the user supplies a pattern
// once, then types lines to test against it, with ":pattern <p>" to
// recompile and ":quit" to exit. The readline/pterm wiring mirrors
// dekarrin-tunaq's and npillmayer-gorgo's terex/terexlang/trepl/repl.go
// REPL shape (readline.New for the prompt, pterm for status lines),
// generalized from an s-expression evaluator to a regex tester.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile patterns and test input lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	rl, err := readline.New("rxctl> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("rxctl REPL — :pattern <p> to compile, :tree to show the AST, :quit to exit")

	r := &regex.Regex{}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == ":quit" || line == ":q":
			return nil

		case strings.HasPrefix(line, ":pattern "):
			pattern := strings.TrimSpace(strings.TrimPrefix(line, ":pattern "))
			if _, err := r.Compile(pattern); err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			pterm.Success.Printfln("compiled %q", pattern)

		case line == ":tree":
			if !r.Compiled() {
				pterm.Error.Println("no pattern compiled yet; use :pattern <p>")
				continue
			}
			root, err := regex.AST(r.Pattern())
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			if err := pterm.DefaultTree.WithRoot(astTreeNode(root)).Render(); err != nil {
				pterm.Error.Println(err.Error())
			}

		default:
			if !r.Compiled() {
				pterm.Error.Println("no pattern compiled yet; use :pattern <p>")
				continue
			}
			printResult(r.Pattern(), line, r.MatchString(line))
		}
	}
}
