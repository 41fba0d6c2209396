package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "agentium-docs",
	Short: "Search, chat and playground backend for the Agentium SDK docs",
	Long: `agentium-docs serves the Agentium SDK documentation backend: ranked
search over the docs catalog, a streaming AI assistant relayed to an LLM
gateway, and a mock API playground. The same features are available from
the command line and to AI agents via MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
