package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/workspace"
)

func newCheckCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Report diagnostics and empty slots for every source file in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.project()
			if err != nil {
				return err
			}
			root := p.RootDir
			if len(args) == 1 {
				root = args[0]
			}

			ws := workspace.New(root, p.Config)
			if err := ws.ScanAll(); err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			paths := ws.Paths()
			var incomplete int
			for _, path := range paths {
				doc := ws.GetFile(path)
				if doc == nil {
					continue
				}
				if !reportDocument(path, doc.Result) {
					incomplete++
				}
			}

			if incomplete > 0 {
				color.Red("%d of %d file(s) incomplete", incomplete, len(paths))
				return fmt.Errorf("%d incomplete file(s)", incomplete)
			}
			color.Green("✓ %d file(s) complete", len(paths))
			return nil
		},
	}

	return cmd
}

// reportDocument prints the problems of one file and reports whether it was
// complete.
func reportDocument(path string, r *linalg.Result) bool {
	name := filepath.ToSlash(path)
	if r.IsComplete() {
		color.Green("✓ %s", name)
		return true
	}
	color.Yellow("✗ %s", name)
	for _, d := range r.Diagnostics {
		color.Red("  %s:%d: %s", name, d.Offset, d.Message)
	}
	for _, ph := range linalg.Placeholders(r.Tree) {
		color.Cyan("  %s:%d: empty %s slot", name, ph.Loc.Start, ph.Expected)
	}
	return false
}
