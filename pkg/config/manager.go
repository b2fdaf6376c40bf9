package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockconfig.gen.go -package=config

// Manager interface provides configuration management functionality with an
// embedded config path.
type Manager interface {
	// GetConfig loads and validates the configuration from the config path.
	GetConfig() (*Config, error)
	// GetConfigWithFallback loads the configuration, falling back to the
	// default configuration if the file is missing.
	GetConfigWithFallback() (*Config, error)
	// SaveConfig saves configuration to the config path.
	SaveConfig(config *Config) error
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
	// DefaultConfig returns the default configuration.
	DefaultConfig() *Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config
// path, falling back to the default configuration if not found.
func (c *realManager) GetConfigWithFallback() (*Config, error) {
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}
	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config *Config) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal configuration to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		Tracker:     TrackerJira,
		BaseURL:     "https://your-company.atlassian.net",
		Username:    "you@your-company.com",
		APITokenEnv: "TRACKER_API_TOKEN",
	}
}
