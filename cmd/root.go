package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "viktools",
	Short: "Developer toolbox for encoding, hashing, JWTs and PlantUML",
	Long: `viktools bundles the small conversions developers reach for every day:
a demo cipher, Base64/URL/HTML/hex codecs, SHA digests, JWT encoding and
decoding, and PlantUML diagram helpers. Use it from the command line, a
terminal UI, a web page, or as MCP tools for AI agents.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
