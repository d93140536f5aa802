package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// CardsExtension is the file extension of cards files in the library
	CardsExtension = ".cards"

	DefaultCards            = "family"
	DefaultCountdownSeconds = 4
	DefaultMaxArenaBytes    = 64 << 20
)

// Config represents the application configuration
type Config struct {
	DefaultCards         string `toml:"default_cards"`
	CountdownSeconds     int    `toml:"countdown_seconds"`
	Color                bool   `toml:"color"`
	StripCarriageReturns bool   `toml:"strip_carriage_returns"`
	MaxArenaBytes        int    `toml:"max_arena_bytes"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultCards:     DefaultCards,
		CountdownSeconds: DefaultCountdownSeconds,
		Color:            true,
		MaxArenaBytes:    DefaultMaxArenaBytes,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCardsLibraryPath returns the path to the cards library
func GetCardsLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "promptdeck", "cards")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "promptdeck", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Keys missing from the file keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if config.CountdownSeconds < 0 {
		return nil, fmt.Errorf("countdown_seconds must not be negative, got %d", config.CountdownSeconds)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetCardsPath returns the path to a cards file, either in the cards library or a relative path
func GetCardsPath(name string) (string, error) {
	libraryPath := GetCardsLibraryPath()

	candidates := []string{
		filepath.Join(libraryPath, name+CardsExtension),
		filepath.Join(libraryPath, name),
		name,
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("cards file not found: %s", name)
}

// GetDefaultCards returns the default cards name from config
func GetDefaultCards() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultCards, nil
}

// SetDefaultCards sets the default cards in the config
func SetDefaultCards(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCards = name

	return writeConfig(config)
}
