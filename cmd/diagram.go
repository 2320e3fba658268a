package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
)

var (
	diagramFormat string
	diagramURL    bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "PlantUML diagram helpers",
}

var diagramGenerateCmd = &cobra.Command{
	Use:   "generate [source]",
	Short: "Show the placeholder for a PlantUML diagram",
	Long: `Rendering needs a PlantUML service, so generate prints the placeholder
markdown and exits non-zero. With --url it prints the render URL on the
configured PlantUML server instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		source, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		req := toolbox.DiagramRequest{Source: source, Format: diagramFormat}

		if diagramURL {
			placeholder, err := tb.DiagramPlaceholder(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), placeholder.RemoteURL)
			return nil
		}

		res, err := tb.DiagramGenerate(req)
		return printResult(cmd, logger, res, err)
	},
}

var diagramValidateCmd = &cobra.Command{
	Use:   "validate [source]",
	Short: "Check PlantUML source for structural errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		if err := diagrams.Validate(source); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	diagramGenerateCmd.Flags().StringVar(&diagramFormat, "format", "", "png or svg (default from config)")
	diagramGenerateCmd.Flags().BoolVar(&diagramURL, "url", false, "print the PlantUML server URL instead of the placeholder")

	diagramCmd.AddCommand(diagramGenerateCmd, diagramValidateCmd)
	rootCmd.AddCommand(diagramCmd)
}
