package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/viktools/viktools/internal/toolbox"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to viktools! Let's configure your toolbox.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default cipher label.
	cipherPrompt := promptui.Select{
		Label: "Default cipher algorithm",
		Items: toolbox.CipherAlgorithms,
	}
	_, cipher, err := cipherPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cipher selection: %w", err)
	}
	cfg.Cipher.Algorithm = cipher

	// 2. Default encoding.
	encodingPrompt := promptui.Select{
		Label: "Default encoding",
		Items: []string{
			"base64   - Base64 of UTF-8 bytes",
			"url      - percent-encoded URI component",
			"html     - HTML entities",
			"hex      - two hex digits per character",
			"hex-utf8 - hex of UTF-8 bytes",
		},
	}
	encodingIdx, _, err := encodingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("encoding selection: %w", err)
	}
	cfg.Encoding.Type = string(toolbox.Encodings[encodingIdx])

	// 3. Default digest. md5 is not offered since it never succeeds.
	hashPrompt := promptui.Select{
		Label: "Default hash algorithm",
		Items: []string{"sha256", "sha512", "sha1"},
	}
	_, hash, err := hashPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hash selection: %w", err)
	}
	cfg.Hash.Algorithm = hash

	// 4. Diagram format.
	formatPrompt := promptui.Select{
		Label: "Default diagram format",
		Items: []string{"png", "svg"},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("diagram format: %w", err)
	}
	cfg.Diagram.Format = format

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 6. Notification lifetime.
	lifetimePrompt := promptui.Prompt{
		Label:    "Notification lifetime",
		Default:  cfg.Notifications.Lifetime,
		Validate: validateLifetime,
	}
	lifetime, err := lifetimePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("notification lifetime: %w", err)
	}
	cfg.Notifications.Lifetime = lifetime

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func validateLifetime(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("use a duration such as 3s or 1500ms")
	}
	if d <= 0 {
		return errors.New("lifetime must be positive")
	}
	return nil
}
