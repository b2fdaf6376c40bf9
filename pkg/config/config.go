// Package config provides configuration management functionality for the
// release manager application.
package config

import (
	"fmt"
	"os"
)

// Tracker backend names accepted in configuration.
const (
	TrackerJira   = "jira"
	TrackerGitHub = "github"
)

// Config represents the application configuration.
type Config struct {
	// Tracker is the backend name: "jira" or "github".
	Tracker string `yaml:"tracker"`
	// BaseURL is the tracker server URL, e.g. https://company.atlassian.net.
	BaseURL string `yaml:"base_url,omitempty"`
	// Username is the tracker account, usually an email address.
	Username string `yaml:"username,omitempty"`
	// APITokenEnv names the environment variable holding the API token.
	// The token itself never lives in the config file.
	APITokenEnv string `yaml:"api_token_env,omitempty"`
	// Projects lists the project keys processed by manifest rendering.
	Projects []string `yaml:"projects,omitempty"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Tracker {
	case TrackerJira:
		if c.BaseURL == "" {
			return ErrBaseURLEmpty
		}
	case TrackerGitHub:
		// Token comes from the environment; no required fields.
	case "":
		return ErrTrackerEmpty
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTracker, c.Tracker)
	}
	return nil
}

// APIToken resolves the API token from the configured environment variable.
// Returns an empty string when no variable is configured or set.
func (c *Config) APIToken() string {
	if c.APITokenEnv == "" {
		return ""
	}
	return os.Getenv(c.APITokenEnv)
}
