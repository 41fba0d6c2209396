package cmd

import (
	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize agentium-docs configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the docs server and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
