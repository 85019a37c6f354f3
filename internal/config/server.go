package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Mock backend defaults.
const (
	DefaultServerPort    = 5000
	DefaultAdminEmail    = "admin@hirenest.com"
	DefaultAdminPassword = "admin123"
)

// ServerConfig configures the development backend.
type ServerConfig struct {
	Port          int
	AdminEmail    string
	AdminPassword string
	Latency       time.Duration
	JWT           *JWTConfig
	Password      *PasswordConfig

	// EphemeralSecret is set when JWT_SECRET was absent and a random secret was
	// generated; tokens do not survive a restart.
	EphemeralSecret bool
}

// LoadServerConfig reads the backend settings from the environment. Unlike the
// production API the mock runs without JWT_SECRET by generating a random one.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:          GetEnvInt("PORT", DefaultServerPort),
		AdminEmail:    GetEnvString("MOCK_ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword: GetEnvString("MOCK_ADMIN_PASSWORD", DefaultAdminPassword),
		Latency:       GetEnvDuration("MOCK_LATENCY", 0),
	}

	if os.Getenv("JWT_SECRET") == "" {
		cfg.EphemeralSecret = true
		cfg.JWT = &JWTConfig{
			Secret:          uuid.NewString(),
			ExpirationHours: GetEnvInt("JWT_EXPIRATION_HOURS", 24),
		}
		if err := cfg.JWT.normalize(); err != nil {
			return nil, err
		}
	} else {
		jwtCfg, err := NewJWTConfig()
		if err != nil {
			return nil, err
		}
		cfg.JWT = jwtCfg
	}

	pw, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}
	cfg.Password = pw

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the backend settings.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("config error: mock admin credentials must not be empty")
	}
	if c.Latency < 0 {
		return fmt.Errorf("config error: MOCK_LATENCY must not be negative")
	}
	return nil
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
