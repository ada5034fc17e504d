package main

import (
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg/workspace"
)

func newWatchCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-evaluate source files whenever they change",
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

			opts := p.Config.FormatOptions()
			ws := workspace.New(root, p.Config)
			watcher := workspace.NewFileWatcher(ws, func(c workspace.Change) {
				if c.Doc == nil {
					color.Yellow("- %s", c.Path)
					return
				}
				r := c.Doc.Result
				if len(r.Diagnostics) > 0 {
					color.Red("%s: %s", c.Path, format.Text(r.Simplified, opts...))
					for _, d := range r.DiagnosticStrings() {
						color.Red("  %s", d)
					}
					return
				}
				color.Green("%s: %s", c.Path, format.Text(r.Simplified, opts...))
			})

			color.Blue("Watching %s every %s", root, p.Config.Watch.Interval)
			watcher.Start()
			defer watcher.Stop()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt
			return nil
		},
	}

	return cmd
}
