package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg/parser"
)

func newFmtCmd() *cobra.Command {
	var file string
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [expression...]",
		Short: "Print an expression in canonical spacing",
		Long: `Print an expression in canonical spacing without evaluating it.

Empty slots print as ` + format.PlaceholderGlyph + `. Use -w together with -f to
overwrite the file in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && (file == "" || file == "-") {
				return fmt.Errorf("-w requires a file argument")
			}
			source, err := readSource(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			tree, _ := parser.ParseString(source)
			output := format.Text(tree) + "\n"

			if fmtOverwrite {
				return os.WriteFile(file, []byte(output), 0644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file (- for stdin)")
	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
