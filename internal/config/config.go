package config

import (
	"os"
	"strconv"
	"time"

	"cloclify/internal/errors"
)

// DefaultAPIURL is the base URL of the Clockify REST API.
const DefaultAPIURL = "https://api.clockify.me/api/v1"

// Config holds all configuration options for the cloclify client
type Config struct {
	API         APIConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// APIConfig holds remote service configuration
type APIConfig struct {
	Key       string        `env:"CLOCKIFY_API_KEY"`
	Workspace string        `env:"CLOCKIFY_WORKSPACE"`
	BaseURL   string        `env:"CLOCKIFY_API_URL"`
	Timeout   time.Duration `env:"CLOCKIFY_API_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat    string `env:"CLOCKIFY_TIME_FORMAT"`
	DateFormat    string `env:"CLOCKIFY_DATE_FORMAT"`
	RunningStatus string `env:"CLOCKIFY_RUNNING_STATUS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"CLOCKIFY_TIMEOUT"`
	Debug   bool          `env:"CLOCKIFY_DEBUG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: 30 * time.Second,
		},
		Display: DisplayConfig{
			TimeFormat:    "15:04",
			DateFormat:    "2006-01-02",
			RunningStatus: "running",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Debug:   false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if key := os.Getenv("CLOCKIFY_API_KEY"); key != "" {
		c.API.Key = key
	}
	if workspace := os.Getenv("CLOCKIFY_WORKSPACE"); workspace != "" {
		c.API.Workspace = workspace
	}
	if baseURL := os.Getenv("CLOCKIFY_API_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("CLOCKIFY_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.Timeout = d
		}
	}

	// Display configuration
	if format := os.Getenv("CLOCKIFY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("CLOCKIFY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if status := os.Getenv("CLOCKIFY_RUNNING_STATUS"); status != "" {
		c.Display.RunningStatus = status
	}

	// Application configuration
	if timeout := os.Getenv("CLOCKIFY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if debug := os.Getenv("CLOCKIFY_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Application.Debug = b
		} else {
			// Any non-empty value that isn't a parseable bool still
			// enables debugging, matching CLOCKIFY_DEBUG=1 style usage.
			c.Application.Debug = true
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return errors.NewConfigurationError(
			"CLOCKIFY_API_KEY is not set: export your Clockify API key to use this tool")
	}
	if c.API.BaseURL == "" {
		return errors.NewConfigurationError("API base URL cannot be empty")
	}
	if c.API.Timeout <= 0 {
		return errors.NewConfigurationError("API timeout must be positive")
	}
	if c.Application.Timeout <= 0 {
		return errors.NewConfigurationError("application timeout must be positive")
	}
	if c.Display.TimeFormat == "" {
		return errors.NewConfigurationError("time display format cannot be empty")
	}
	if c.Display.RunningStatus == "" {
		return errors.NewConfigurationError("running status text cannot be empty")
	}
	return nil
}
