package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/linalg/parser"
)

func newTokensCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tokens [expression...]",
		Short: "Print the tokens of an expression with their offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range parser.Tokenize(source) {
				fmt.Fprintf(out, "%-6s %-8s %q\n", tok.Span(), tok.Kind, tok.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file (- for stdin)")

	return cmd
}
