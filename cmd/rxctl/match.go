package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkpro118/regex-engine-go/regex"
)

func newMatchCmd() *cobra.Command {
	var pattern string
	var line string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Compile a pattern and test it against one input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--pattern is required")
			}

			r := &regex.Regex{}
			if _, err := r.Compile(pattern); err != nil {
				return err
			}

			if fromStdin {
				scanner := bufio.NewScanner(os.Stdin)
				allMatched := true
				for scanner.Scan() {
					text := scanner.Text()
					matched := r.MatchString(text)
					printResult(pattern, text, matched)
					allMatched = allMatched && matched
				}
				if !allMatched {
					os.Exit(1)
				}
				return scanner.Err()
			}

			matched := r.MatchString(line)
			printResult(pattern, line, matched)
			if !matched {
				os.Exit(1)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&pattern, "pattern", "p", "", "pattern to compile")
	flags.StringVarP(&line, "input", "i", "", "input string to test against pattern")
	flags.BoolVar(&fromStdin, "stdin", false, "read one input per line from stdin instead of --input")

	return cmd
}
