package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/linalg/workspace"
	"github.com/dhamidi/mathpad/ui"
)

func newUICmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.project()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				p.Config.UI.Addr = addr
			}

			ws := workspace.New(p.RootDir, p.Config)
			watcher := workspace.NewFileWatcher(ws, nil)
			watcher.Start()
			defer watcher.Stop()

			server, err := ui.NewServer(ws, p.Config)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := p.Config.UI.Addr
			if strings.HasPrefix(displayAddr, ":") {
				displayAddr = "localhost" + displayAddr
			}
			color.Blue("Starting server at http://%s", displayAddr)
			return http.ListenAndServe(p.Config.UI.Addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}
