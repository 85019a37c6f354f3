package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/hirenest/admin-console/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern; a trailing "/" matches by prefix
	Method string        // HTTP method, empty for any
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// key identifies the bucket group of the endpoint.
func (e *EndpointConfig) key() string {
	return e.Method + " " + e.Path
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !config.GetEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    config.GetEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   config.GetEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: config.GetEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(config.GetEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(config.GetEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	writes := func(path, method string) EndpointConfig {
		return EndpointConfig{Path: path, Method: method, Limit: 120, Window: time.Minute, Burst: 20}
	}
	return []EndpointConfig{
		// Credential guessing gets the strictest limit.
		{Path: "/admin/auth/login", Method: http.MethodPost, Limit: 10, Window: time.Minute, Burst: 5},

		writes("/admin/job-providers/", http.MethodPatch),
		writes("/admin/job-providers/", http.MethodDelete),
		writes("/admin/job-seekers/", http.MethodPatch),
		writes("/admin/job-seekers/", http.MethodDelete),
		writes("/admin/job-posts/", http.MethodPatch),
		writes("/admin/job-posts/", http.MethodDelete),
		writes("/admin/packages", http.MethodPost),
		writes("/admin/packages/", http.MethodPut),
		writes("/admin/packages/", http.MethodDelete),
		writes("/admin/features", http.MethodPost),
		writes("/admin/features/", http.MethodPut),
		writes("/admin/features/", http.MethodDelete),
		writes("/admin/settings", http.MethodPut),
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
