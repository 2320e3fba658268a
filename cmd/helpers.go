package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/config"
	"github.com/viktools/viktools/internal/toolbox"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `viktools init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the slog logger described by cfg. --verbose forces
// debug level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if cfg.Log.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// setup loads the config and returns it with a logger on stderr and a
// toolbox using its selector defaults.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *toolbox.Toolbox, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	return cfg, logger, toolbox.New(cfg.ToolboxOptions()), nil
}

// readInput returns the positional arguments joined by spaces, or stdin
// when there are none. A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// printResult writes a toolbox outcome: the output on stdout and the
// status message on stderr. Failures still print any placeholder output.
func printResult(cmd *cobra.Command, logger *slog.Logger, res toolbox.Result, err error) error {
	if err != nil {
		if placeholder := toolbox.PlaceholderOf(err); placeholder != "" {
			fmt.Fprintln(cmd.OutOrStdout(), placeholder)
		}
		logger.Debug("operation failed", "kind", toolbox.KindOf(err), "error", err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	logger.Debug("operation succeeded", "message", res.Message)
	return nil
}
