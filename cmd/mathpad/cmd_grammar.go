package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/mathpad/linalg/parser"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print or verify the expression grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), parser.GrammarSource())
			return nil
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file, or the built-in grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				g, err := parser.Grammar()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ok: %d productions\n", len(g))
				return nil
			}

			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			g, err := ebnf.Parse(filename, f)
			if err != nil {
				return fmt.Errorf("parse grammar: %w", err)
			}
			if startProduction != "" {
				if err := ebnf.Verify(g, startProduction); err != nil {
					return fmt.Errorf("verify grammar: %w", err)
				}
			}
			for _, name := range parser.Productions(g) {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", parser.GrammarStart, "start production for verification (empty skips verification)")

	return cmd
}
