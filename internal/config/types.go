package config

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level viktools configuration, corresponding to .viktools.yml.
type Config struct {
	Server        ServerConfig       `yaml:"server" koanf:"server"`
	Notifications NotificationConfig `yaml:"notifications" koanf:"notifications"`
	Cipher        CipherConfig       `yaml:"cipher" koanf:"cipher"`
	Encoding      EncodingConfig     `yaml:"encoding" koanf:"encoding"`
	Hash          HashConfig         `yaml:"hash" koanf:"hash"`
	Diagram       DiagramConfig      `yaml:"diagram" koanf:"diagram"`
	Log           LogConfig          `yaml:"log" koanf:"log"`
	TUI           TUIConfig          `yaml:"tui" koanf:"tui"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// NotificationConfig controls how long status messages stay visible.
// Lifetime is a Go duration string such as "3s".
type NotificationConfig struct {
	Lifetime string `yaml:"lifetime" koanf:"lifetime"`
}

// CipherConfig holds the default demo cipher label.
type CipherConfig struct {
	Algorithm string `yaml:"algorithm" koanf:"algorithm"`
}

// EncodingConfig holds the default encoding.
type EncodingConfig struct {
	Type string `yaml:"type" koanf:"type"`
}

// HashConfig holds the default digest.
type HashConfig struct {
	Algorithm string `yaml:"algorithm" koanf:"algorithm"`
}

// DiagramConfig holds diagram defaults.
type DiagramConfig struct {
	Format    string `yaml:"format" koanf:"format"`
	ServerURL string `yaml:"server_url" koanf:"server_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	AltScreen bool `yaml:"alt_screen" koanf:"alt_screen"`
}
