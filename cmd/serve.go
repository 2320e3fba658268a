package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/viktools/viktools/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the toolbox operations as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		logger.Info("viktools MCP server started on stdio", "version", Version)

		return mcpserver.NewServer(tb).Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
