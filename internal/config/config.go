package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Session  SessionConfig  `json:"session"`
	Defaults DefaultsConfig `json:"defaults"`
	Logging  LoggingConfig  `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	TTL time.Duration `json:"ttl"`
}

// DefaultsConfig holds the default pricing and crediting assumptions applied
// to scenarios that do not override them.
type DefaultsConfig struct {
	TokenPrice     float64 `json:"token_price"` // $/tCO2e
	PathFee        float64 `json:"path_fee"`    // fraction of gross
	GWP            float64 `json:"gwp"`
	CreditingYears int     `json:"crediting_years"`
	DiscountRate   float64 `json:"discount_rate"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Session: SessionConfig{
			TTL: 2 * time.Hour,
		},
		Defaults: DefaultsConfig{
			TokenPrice:     20.0,
			PathFee:        0.02,
			GWP:            28,
			CreditingYears: 50,
			DiscountRate:   0.08,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.Session.TTL = d
		}
	}
	if price := os.Getenv("DEFAULT_TOKEN_PRICE"); price != "" {
		if v, err := strconv.ParseFloat(price, 64); err == nil {
			config.Defaults.TokenPrice = v
		}
	}
	if fee := os.Getenv("DEFAULT_PATH_FEE"); fee != "" {
		if v, err := strconv.ParseFloat(fee, 64); err == nil {
			config.Defaults.PathFee = v
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks the loaded configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.Defaults.TokenPrice <= 0 {
		return fmt.Errorf("default token price must be positive")
	}
	if c.Defaults.PathFee < 0 || c.Defaults.PathFee >= 1 {
		return fmt.Errorf("default path fee must be a fraction between 0 and 1")
	}
	if c.Defaults.GWP <= 0 {
		return fmt.Errorf("default GWP must be positive")
	}
	if c.Defaults.CreditingYears <= 0 {
		return fmt.Errorf("default crediting period must be positive")
	}
	return nil
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
