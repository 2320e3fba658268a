package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: VIKTOOLS_SERVER__PORT sets server.port.
const EnvPrefix = "VIKTOOLS_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (VIKTOOLS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: VIKTOOLS_LOG__LEVEL -> log.level, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}

	if _, err := c.NotificationLifetime(); err != nil {
		return err
	}

	if !slices.Contains(toolbox.CipherAlgorithms, c.Cipher.Algorithm) {
		return fmt.Errorf("invalid cipher.algorithm %q: must be one of %s", c.Cipher.Algorithm, strings.Join(toolbox.CipherAlgorithms, ", "))
	}

	if !slices.Contains(toolbox.Encodings, toolbox.Encoding(c.Encoding.Type)) {
		return fmt.Errorf("invalid encoding.type %q", c.Encoding.Type)
	}

	switch toolbox.HashAlgorithm(c.Hash.Algorithm) {
	case toolbox.HashSHA1, toolbox.HashSHA256, toolbox.HashSHA512:
	default:
		return fmt.Errorf("invalid hash.algorithm %q: must be one of sha1, sha256, sha512", c.Hash.Algorithm)
	}

	if _, err := diagrams.ParseFormat(c.Diagram.Format); err != nil {
		return fmt.Errorf("invalid diagram.format: %w", err)
	}
	if c.Diagram.ServerURL != "" {
		u, err := url.Parse(c.Diagram.ServerURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid diagram.server_url %q: must be an http(s) URL", c.Diagram.ServerURL)
		}
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log.level %q: must be one of %s", c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	if c.Log.Format != LogFormatText && c.Log.Format != LogFormatJSON {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}

	return nil
}

// NotificationLifetime parses notifications.lifetime.
func (c *Config) NotificationLifetime() (time.Duration, error) {
	d, err := time.ParseDuration(c.Notifications.Lifetime)
	if err != nil {
		return 0, fmt.Errorf("invalid notifications.lifetime %q: %w", c.Notifications.Lifetime, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid notifications.lifetime %q: must be positive", c.Notifications.Lifetime)
	}
	return d, nil
}

// LogLevel returns the slog level named by log.level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ToolboxOptions converts the selector defaults into toolbox options.
func (c *Config) ToolboxOptions() toolbox.Options {
	return toolbox.Options{
		CipherAlgorithm: c.Cipher.Algorithm,
		Encoding:        toolbox.Encoding(c.Encoding.Type),
		HashAlgorithm:   toolbox.HashAlgorithm(c.Hash.Algorithm),
		DiagramFormat:   diagrams.Format(c.Diagram.Format),
		DiagramServer:   c.Diagram.ServerURL,
	}
}
