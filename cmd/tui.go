package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/clipboard"
	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/tui"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal toolbox",
	Long: `Opens the tabbed terminal toolbox. Ctrl+N/Ctrl+P switch tabs, Tab moves
between fields, Ctrl+R runs the primary action and Ctrl+Y copies the output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lifetime, err := cfg.NotificationLifetime()
		if err != nil {
			return err
		}

		// The TUI owns the terminal, so logs go to a file or nowhere.
		var logOut io.Writer = io.Discard
		if tuiLogFile != "" {
			f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
		logger := newLogger(cfg, logOut)

		model := tui.New(tui.Config{
			Toolbox:   toolbox.New(cfg.ToolboxOptions()),
			Clipboard: clipboard.System{},
			Fallback:  clipboard.Terminal{},
			Lifetime:  lifetime,
			Logger:    logger,
		})

		var opts []tea.ProgramOption
		if cfg.TUI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}
		opts = append(opts, tea.WithContext(cmd.Context()))

		if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
			logger.Error("tui exited", slog.Any("error", err))
			return err
		}
		return nil
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file while the TUI runs")
	rootCmd.AddCommand(tuiCmd)
}
