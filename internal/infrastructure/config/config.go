// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	port := cfg.Server.Port
//	sellers := cfg.Market.Sellers
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Market        MarketConfig        `yaml:"market"`
	Broker        BrokerConfig        `yaml:"broker"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// MarketConfig holds the buyer identity and the seller seed catalogs.
// An empty seller list means the built-in sample catalogs are used.
type MarketConfig struct {
	Buyer   string         `yaml:"buyer"`
	Sellers []SellerConfig `yaml:"sellers"`
}

// SellerConfig seeds one seller's catalog.
type SellerConfig struct {
	Name    string        `yaml:"name"`
	Catalog []EntryConfig `yaml:"catalog"`
}

// EntryConfig seeds one stock entry.
type EntryConfig struct {
	Title     string  `yaml:"title"`
	UnitPrice float64 `yaml:"unit_price"`
	Quantity  int     `yaml:"quantity"`
}

// BrokerConfig holds the optional broker settings. When disabled the
// session settles without an intermediation fee.
type BrokerConfig struct {
	Enabled bool    `yaml:"enabled"`
	Name    string  `yaml:"name"`
	FlatFee float64 `yaml:"flat_fee"`
}

// ObservabilityConfig holds observability settings.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${MARKET_BUYER})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("MARKET_PORT", 8080),
		},
		Market: MarketConfig{
			Buyer: getEnv("MARKET_BUYER", ""),
		},
		Broker: BrokerConfig{
			Enabled: getEnv("MARKET_BROKER_NAME", "") != "",
			Name:    getEnv("MARKET_BROKER_NAME", ""),
			FlatFee: getEnvFloat("MARKET_BROKER_FEE", 0),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
	applyDefaults(cfg)
	return cfg
}

// LoadOrEnv tries to load from config.yaml, falls back to environment
// variables.
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the specified path, falls back to
// environment variables.
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// applyDefaults fills in settings that must never be empty.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if cfg.Observability.Logging.Level == "" {
		cfg.Observability.Logging.Level = "info"
	}
	if cfg.Observability.Logging.Format == "" {
		cfg.Observability.Logging.Format = "text"
	}
}

// getEnv retrieves an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default.
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

// getEnvFloat retrieves a float environment variable with a fallback default.
func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		var result float64
		if _, err := fmt.Sscanf(val, "%g", &result); err == nil {
			return result
		}
	}
	return fallback
}
