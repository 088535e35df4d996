// Package config loads the optional a11y-bridge.yaml used by `serve`.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-bridge/internal/logging"
)

// Transports accepted by the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the server configuration. Zero fields in a loaded file keep
// their defaults.
type Config struct {
	Transport string        `yaml:"transport"`
	Port      int           `yaml:"port"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
	Fixture   string        `yaml:"fixture"`
	Strict    bool          `yaml:"strict"`
	LogLevel  string        `yaml:"log_level"`
	Metrics   bool          `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Transport: TransportStdio,
		Port:      8080,
		CacheTTL:  500 * time.Millisecond,
		LogLevel:  "info",
		Metrics:   true,
	}
}

// Load reads path over the defaults. An empty path returns the defaults;
// a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("transport must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	if c.Transport == TransportHTTP && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address for the HTTP transport.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
