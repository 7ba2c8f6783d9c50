package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mkpro118/regex-engine-go/internal/ast"
	"github.com/mkpro118/regex-engine-go/regex"
)

func newTreeCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Parse a pattern and render its syntax tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--pattern is required")
			}

			root, err := regex.AST(pattern)
			if err != nil {
				return err
			}

			return pterm.DefaultTree.WithRoot(astTreeNode(root)).Render()
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to parse")

	return cmd
}

// astTreeNode renders an ast.Node as a pterm.TreeNode, the same role
// the teacher's app/ast prettyPrint plays with hand-rolled box-drawing
// characters — here built the way
// npillmayer-gorgo/terex/terexlang/trepl/repl.go's indentedListFrom
// builds a pterm.TreeNode tree from a recursive value.
func astTreeNode(n ast.Node) pterm.TreeNode {
	switch v := n.(type) {
	case ast.Char:
		return pterm.TreeNode{Text: fmt.Sprintf("Char(%c)", v.Value)}

	case ast.Star:
		return pterm.TreeNode{Text: "Star", Children: []pterm.TreeNode{astTreeNode(v.Child)}}

	case ast.Plus:
		return pterm.TreeNode{Text: "Plus", Children: []pterm.TreeNode{astTreeNode(v.Child)}}

	case ast.Question:
		return pterm.TreeNode{Text: "Question", Children: []pterm.TreeNode{astTreeNode(v.Child)}}

	case ast.Or:
		return pterm.TreeNode{Text: "Or", Children: []pterm.TreeNode{astTreeNode(v.Left), astTreeNode(v.Right)}}

	case ast.Concat:
		return pterm.TreeNode{Text: "Concat", Children: []pterm.TreeNode{astTreeNode(v.Left), astTreeNode(v.Right)}}

	default:
		return pterm.TreeNode{Text: fmt.Sprintf("unknown(%T)", n)}
	}
}
