package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Swaps    int    `toml:"swaps"`
	Seed     uint64 `toml:"seed"` // 0 picks a random seed per run
	Preview  int    `toml:"preview"`
	LogLevel string `toml:"log_level"`
}

// Keys lists the settable config keys in file order
var Keys = []string{"swaps", "seed", "preview", "log_level"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Swaps:    1000,
		Seed:     0,
		Preview:  5,
		LogLevel: "info",
	}
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pokerdeck", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config, err := decodeConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// decodeConfig reads the config file over the defaults without range checks
func decodeConfig(configPath string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed
func Save(config *Config) (err error) {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error writing config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Swaps < 0 {
		return fmt.Errorf("swaps must not be negative, got %d", c.Swaps)
	}
	if c.Preview < 0 || c.Preview > 52 {
		return fmt.Errorf("preview must be between 0 and 52, got %d", c.Preview)
	}
	if !contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	return nil
}

// Get returns the string form of one key
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "swaps":
		return strconv.Itoa(c.Swaps), nil
	case "seed":
		return strconv.FormatUint(c.Seed, 10), nil
	case "preview":
		return strconv.Itoa(c.Preview), nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set parses value into key and validates the result
func (c *Config) Set(key, value string) error {
	updated := *c

	var err error
	switch key {
	case "swaps":
		updated.Swaps, err = strconv.Atoi(value)
	case "seed":
		updated.Seed, err = strconv.ParseUint(value, 10, 64)
	case "preview":
		updated.Preview, err = strconv.Atoi(value)
	case "log_level":
		updated.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*c = updated
	return nil
}

// SetValue updates one key in the config file. The file is not range checked
// on load so a bad value can be replaced; the updated config must be valid.
func SetValue(key, value string) error {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); err == nil {
		if config, err = decodeConfig(configPath); err != nil {
			return err
		}
	}

	if err := config.Set(key, value); err != nil {
		return err
	}

	return Save(config)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
