package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg/parser"
)

func newParseCmd() *cobra.Command {
	var file string
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse [expression...]",
		Short: "Parse an expression and dump the tree with its diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			tree, diags := parser.ParseString(source)
			out := cmd.OutOrStdout()

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(out)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Fprintln(out)
			case "tree":
				if includePositions {
					fmt.Fprint(out, parser.DumpWithPositions(tree))
				} else {
					fmt.Fprint(out, parser.Dump(tree))
				}
			default:
				return fmt.Errorf("unknown format: %s (expected tree or json)", outputFormat)
			}

			for _, d := range diags {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", d)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file (- for stdin)")
	cmd.Flags().StringVar(&outputFormat, "format", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", true, "include source spans in tree output")

	return cmd
}
