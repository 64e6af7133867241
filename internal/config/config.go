package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		SampleData bool `yaml:"sample_data" env:"SEED_SAMPLE_DATA"`
	} `yaml:"seed"`

	Roster struct {
		SheetName     string `yaml:"sheet_name" env:"ROSTER_SHEET_NAME"`
		MaxUploadSize int64  `yaml:"max_upload_size" env:"ROSTER_MAX_UPLOAD_SIZE"`
	} `yaml:"roster"`
}

var (
	validModes      = []string{"development", "production", "test"}
	validLogLevels  = []string{"debug", "info", "warn", "error", "fatal"}
	validLogFormats = []string{"json", "text"}
)

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.SampleData = false

	config.Roster.SheetName = "Roster"
	config.Roster.MaxUploadSize = 8 << 20
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if !oneOf(config.Server.Mode, validModes) {
		return fmt.Errorf("server mode must be one of %v, got %q", validModes, config.Server.Mode)
	}

	if !oneOf(config.Logging.Level, validLogLevels) {
		return fmt.Errorf("log level must be one of %v, got %q", validLogLevels, config.Logging.Level)
	}

	if !oneOf(config.Logging.Format, validLogFormats) {
		return fmt.Errorf("log format must be one of %v, got %q", validLogFormats, config.Logging.Format)
	}

	if config.Roster.MaxUploadSize <= 0 {
		return fmt.Errorf("roster max upload size must be positive")
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
