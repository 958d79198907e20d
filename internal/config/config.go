package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName        = "swapboard.yaml"
	defaultTimeoutSeconds = 15
)

// Config represents the application configuration
type Config struct {
	APIBaseURL            string `yaml:"apiBaseURL" validate:"required,url"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	SessionFile           string `yaml:"sessionFile,omitempty"`
}

// RequestTimeout returns the per-request timeout for API calls
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration. It reads swapboard.yaml from
// the current directory first, then the user's home directory, then applies
// SWAPBOARD_* environment overrides (a .env file is honoured if present).
// A config file is optional when SWAPBOARD_API_URL is set.
func Load() (*Config, error) {
	// Best effort: a missing .env is not an error
	_ = godotenv.Load()

	cfg := &Config{RequestTimeoutSeconds: defaultTimeoutSeconds}

	if configPath, err := findConfigFile(); err == nil {
		loaded, err := LoadFromPath(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads the configuration from a specific path without
// applying environment overrides
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{RequestTimeoutSeconds: defaultTimeoutSeconds}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.RequestTimeoutSeconds == 0 {
		cfg.RequestTimeoutSeconds = defaultTimeoutSeconds
	}

	return cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SWAPBOARD_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SWAPBOARD_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeoutSeconds = secs
		}
	}
	if v := os.Getenv("SWAPBOARD_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}

// findConfigFile searches for swapboard.yaml in the current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
