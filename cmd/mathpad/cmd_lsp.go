package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/mathpad/linalg/workspace"
)

func newLSPCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.project()
			if err != nil {
				return err
			}
			server := workspace.NewLSPServer(version, p.Config)
			return server.RunStdio()
		},
	}
}
