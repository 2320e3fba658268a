package config

import (
	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = ".viktools.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	opts := toolbox.DefaultOptions()
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Notifications: NotificationConfig{
			Lifetime: "3s",
		},
		Cipher: CipherConfig{
			Algorithm: opts.CipherAlgorithm,
		},
		Encoding: EncodingConfig{
			Type: string(opts.Encoding),
		},
		Hash: HashConfig{
			Algorithm: string(opts.HashAlgorithm),
		},
		Diagram: DiagramConfig{
			Format:    string(opts.DiagramFormat),
			ServerURL: diagrams.DefaultServerURL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		TUI: TUIConfig{
			AltScreen: true,
		},
	}
}
