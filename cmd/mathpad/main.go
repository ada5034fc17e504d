package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string
	var configDir string

	rootCmd := &cobra.Command{
		Use:          "mathpad",
		Short:        "Live linear algebra expression evaluator",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&configDir, "project", "C", ".", "project directory containing mathpad.yaml")

	e := &env{configDir: &configDir}

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newSimplifyCmd(e))
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCheckCmd(e))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newWatchCmd(e))
	rootCmd.AddCommand(newLSPCmd(e))
	rootCmd.AddCommand(newUICmd(e))

	return rootCmd
}
