// Package config provides configuration loading and validation for the console and
// its development backend. Values come from environment variables (optionally via a
// .env file) and an optional JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Defaults.
const (
	DefaultAPIURL   = "http://localhost:5000"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Config represents the console configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	// Backend
	APIURL        string `json:"api_url,omitempty"`        // Admin API base URL
	Timeout       string `json:"timeout,omitempty"`        // HTTP timeout, e.g. "30s"
	StrictSchemas bool   `json:"strict_schemas,omitempty"` // Validate response envelopes

	// Local state
	SessionFile string `json:"session_file,omitempty"` // Persisted session path
	RosterFile  string `json:"roster_file,omitempty"`  // Team roster path

	// Display
	PageSize int `json:"page_size,omitempty"` // Rows per list page

	// Logging
	LogLevel string `json:"log_level,omitempty"`
	LogDev   bool   `json:"log_dev,omitempty"`
}

// FromEnv builds a Config from HIRENEST_* and LOG_* environment variables.
func FromEnv() Config {
	return Config{
		APIURL:        GetEnvString("HIRENEST_API_URL", ""),
		Timeout:       GetEnvString("HIRENEST_TIMEOUT", ""),
		StrictSchemas: GetEnvBool("HIRENEST_STRICT_SCHEMAS", false),
		SessionFile:   GetEnvString("HIRENEST_SESSION_FILE", ""),
		RosterFile:    GetEnvString("HIRENEST_ROSTER_FILE", ""),
		PageSize:      GetEnvInt("HIRENEST_PAGE_SIZE", 0),
		LogLevel:      GetEnvString("LOG_LEVEL", ""),
		LogDev:        GetEnvBool("LOG_DEV", false),
	}
}

// Defaults returns the built-in values. Paths default under the user config dir.
func Defaults() Config {
	cfg := Config{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout.String(),
		PageSize: DefaultPageSize,
		LogLevel: "warn",
	}
	if base, err := os.UserConfigDir(); err == nil {
		cfg.SessionFile = filepath.Join(base, "hirenest", "session.json")
		cfg.RosterFile = filepath.Join(base, "hirenest", "team.json")
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Resolve merges environment, an optional JSON file and the defaults, in that
// order of precedence, and validates the result.
func Resolve(path string) (Config, error) {
	env := FromEnv()
	merged := env
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		merged = env.MergeWithDefaults(*file)
		merged.StrictSchemas = env.StrictSchemas || file.StrictSchemas
		merged.LogDev = env.LogDev || file.LogDev
	}
	merged = merged.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'api_url' must be an absolute URL, got %q", c.APIURL)
		}
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'timeout' must be positive")
		}
	}
	if c.PageSize < 0 || c.PageSize > MaxPageSize {
		return fmt.Errorf("config error: 'page_size' must be between 1 and %d", MaxPageSize)
	}
	return nil
}

// TimeoutDuration returns the parsed timeout, or DefaultTimeout.
func (c *Config) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultTimeout
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.Timeout == "" {
		result.Timeout = defaults.Timeout
	}
	if result.SessionFile == "" {
		result.SessionFile = defaults.SessionFile
	}
	if result.RosterFile == "" {
		result.RosterFile = defaults.RosterFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}
