package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/viktools/viktools/internal/toolbox"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Encoding.Type != "base64" {
		t.Errorf("expected default encoding %q, got %q", "base64", cfg.Encoding.Type)
	}
	if cfg.Hash.Algorithm != "sha256" {
		t.Errorf("expected default hash %q, got %q", "sha256", cfg.Hash.Algorithm)
	}
	if cfg.Notifications.Lifetime != "3s" {
		t.Errorf("expected default lifetime 3s, got %q", cfg.Notifications.Lifetime)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.viktools.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Server.AllowAllOrigins = true
	original.Cipher.Algorithm = "3DES"
	original.Encoding.Type = "hex-utf8"
	original.Diagram.Format = "svg"
	original.Notifications.Lifetime = "1500ms"
	original.TUI.AltScreen = false

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("hash:\n  algorithm: sha512\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Hash.Algorithm != "sha512" {
		t.Errorf("hash.algorithm = %q", cfg.Hash.Algorithm)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("unset keys should keep defaults, port = %d", cfg.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("VIKTOOLS_SERVER__PORT", "9999")
	t.Setenv("VIKTOOLS_LOG__LEVEL", "debug")
	t.Setenv("VIKTOOLS_SERVER__ALLOW_ALL_ORIGINS", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("env override failed: port = %d", loaded.Server.Port)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("env override failed: log.level = %q", loaded.Log.Level)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("env override failed: allow_all_origins")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"VIKTOOLS_SERVER__PORT":        "server.port",
		"VIKTOOLS_DIAGRAM__SERVER_URL": "diagram.server_url",
		"VIKTOOLS_TUI__ALT_SCREEN":     "tui.alt_screen",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"lifetime", func(c *Config) { c.Notifications.Lifetime = "soon" }},
		{"negative lifetime", func(c *Config) { c.Notifications.Lifetime = "-1s" }},
		{"cipher", func(c *Config) { c.Cipher.Algorithm = "ROT13" }},
		{"encoding", func(c *Config) { c.Encoding.Type = "morse" }},
		{"md5 default", func(c *Config) { c.Hash.Algorithm = "md5" }},
		{"format", func(c *Config) { c.Diagram.Format = "gif" }},
		{"server url", func(c *Config) { c.Diagram.ServerURL = "ftp://example.com" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNotificationLifetime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Notifications.Lifetime = "1500ms"
	d, err := cfg.NotificationLifetime()
	if err != nil {
		t.Fatal(err)
	}
	if d != 1500*time.Millisecond {
		t.Errorf("lifetime = %v", d)
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.LogLevel())
	}
	cfg.Log.Level = "nonsense"
	if cfg.LogLevel() != slog.LevelInfo {
		t.Errorf("fallback level = %v", cfg.LogLevel())
	}
}

func TestToolboxOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding.Type = "url"
	opts := cfg.ToolboxOptions()
	if opts.Encoding != toolbox.EncodingURL {
		t.Errorf("encoding = %q", opts.Encoding)
	}
	if opts.CipherAlgorithm != "AES" {
		t.Errorf("cipher = %q", opts.CipherAlgorithm)
	}
}

func TestValidateHelpers(t *testing.T) {
	if validatePort("8080") != nil || validatePort("0") == nil || validatePort("x") == nil {
		t.Error("validatePort")
	}
	if validateLifetime("2s") != nil || validateLifetime("0s") == nil || validateLifetime("x") == nil {
		t.Error("validateLifetime")
	}
}
