// Package common provides shared utilities for Folio
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Folio
type Config struct {
	Environment string         `toml:"environment"`
	Symbols     []string       `toml:"symbols"` // valid product symbols
	Buckets     []BucketConfig `toml:"buckets"`
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Ledger      LedgerConfig   `toml:"ledger"`
	Clients     ClientsConfig  `toml:"clients"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds path configuration for the price cache area.
type StorageConfig struct {
	Path string `toml:"path"`
}

// LedgerConfig points at the read-only trade ledger file.
type LedgerConfig struct {
	Path string `toml:"path"`
}

// BucketConfig declares a named, ordered group of symbols.
// The lookup code is derived from the name at load time.
type BucketConfig struct {
	Name    string   `toml:"name"`
	Symbols []string `toml:"symbols"`
}

// Code returns the normalized lookup code for the bucket
// (name upper-cased with all whitespace stripped).
func (b BucketConfig) Code() string {
	return NormalizeBucketCode(b.Name)
}

// NormalizeBucketCode strips whitespace and upper-cases a bucket name.
func NormalizeBucketCode(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToUpper(sb.String())
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Baraka BarakaConfig `toml:"baraka"`
}

// BarakaConfig holds Baraka quote API configuration
type BarakaConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BarakaConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Symbols: []string{
			"PBR", "AAPL", "NVDA", "NIO", "AMD",
			"F", "TSLA", "AMZN", "AMC", "CCL",
		},
		Buckets: []BucketConfig{
			{Name: "Bucket A", Symbols: []string{"PBR", "AAPL", "NVDA", "NIO", "AMD"}},
			{Name: "Bucket B", Symbols: []string{"F", "TSLA", "AMZN", "AMC", "CCL"}},
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Storage: StorageConfig{
			Path: "data/historical-price",
		},
		Ledger: LedgerConfig{
			Path: "data/trades.json",
		},
		Clients: ClientsConfig{
			Baraka: BarakaConfig{
				BaseURL:   "https://api.dev.app.getbaraka.com",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIO_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FOLIO_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FOLIO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("FOLIO_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Join(path, "historical-price")
	}

	if path := os.Getenv("FOLIO_LEDGER_PATH"); path != "" {
		config.Ledger.Path = path
	}

	if u := os.Getenv("FOLIO_BARAKA_URL"); u != "" {
		config.Clients.Baraka.BaseURL = u
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ValidSymbol reports whether symbol is in the configured universe.
// The symbol is expected to be normalized (trimmed, upper-cased) already.
func (c *Config) ValidSymbol(symbol string) bool {
	for _, s := range c.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
