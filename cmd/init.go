package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize viktools configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the default cipher, encoding, digest, diagram format and server port, and writes them to .viktools.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
