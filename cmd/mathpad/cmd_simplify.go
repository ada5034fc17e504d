package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg"
)

func newSimplifyCmd(e *env) *cobra.Command {
	var file string
	var outputFormat string
	var precision int
	var withSource bool

	cmd := &cobra.Command{
		Use:     "simplify [expression...]",
		Aliases: []string{"eval"},
		Short:   "Evaluate an expression as far as its operands allow",
		Example: `  mathpad simplify '<1,2> + <3,4>'
  mathpad simplify --format json '[1,2;3,4] * <1,1>'
  echo '<1,0,0> × <0,1,0>' | mathpad simplify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.project()
			if err != nil {
				return err
			}
			cfg := p.Config
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = outputFormat
			}
			if cmd.Flags().Changed("precision") {
				cfg.Output.Precision = precision
			}

			source, err := readSource(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			opts := cfg.FormatOptions()
			if withSource {
				opts = append(opts, format.WithSource())
			}
			enc, err := format.NewEncoder(cfg.Output.Format, cmd.OutOrStdout(), opts...)
			if err != nil {
				return err
			}
			if err := enc.Encode(linalg.FromSource(source)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file (- for stdin)")
	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json, line)")
	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "decimal places for numbers (-1 for shortest)")
	cmd.Flags().BoolVarP(&withSource, "source", "s", false, "print the parsed expression next to the result")

	return cmd
}
