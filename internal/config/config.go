// Package config provides YAML configuration for the command line tool and
// the render service.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/symsvg/pkg/raster"
)

// Config is the root configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
}

// RenderConfig holds the defaults for a conversion
type RenderConfig struct {
	Size         int    `yaml:"size"`
	MaxSize      int    `yaml:"maxSize"` // largest size a request may ask for
	Unit         string `yaml:"unit"` // unit selection, e.g. "1", "1-3" or "all"
	DebugExtents bool   `yaml:"debugExtents"`
	PNG          bool   `yaml:"png"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr                 string `yaml:"addr"`
	ReadTimeout          int    `yaml:"readTimeoutSeconds"`
	WriteTimeout         int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout          int    `yaml:"idleTimeoutSeconds"`
	BodyLimit            string `yaml:"bodyLimit"`
	EnableRequestLogging bool   `yaml:"enableRequestLogging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Size:    500,
			MaxSize: 4096,
			Unit:    "1",
		},
		Server: ServerConfig{
			Addr:                 ":8080",
			ReadTimeout:          30,
			WriteTimeout:         30,
			IdleTimeout:          120,
			BodyLimit:            "4M",
			EnableRequestLogging: true,
		},
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides lets the environment override the listen address
func (c *Config) applyEnvironmentOverrides() {
	if addr := os.Getenv("SYMSVG_ADDR"); addr != "" {
		c.Server.Addr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Render.Size <= 0 {
		return fmt.Errorf("render.size must be positive, got %d", c.Render.Size)
	}
	if c.Render.MaxSize <= 0 || c.Render.MaxSize > raster.MaxSize {
		return fmt.Errorf("render.maxSize must be in 1..%d, got %d", raster.MaxSize, c.Render.MaxSize)
	}
	if c.Render.Size > c.Render.MaxSize {
		return fmt.Errorf("render.size %d exceeds render.maxSize %d", c.Render.Size, c.Render.MaxSize)
	}
	if c.Render.Unit == "" {
		return fmt.Errorf("render.unit must not be empty")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if _, err := bytes.Parse(c.Server.BodyLimit); err != nil {
		return fmt.Errorf("server.bodyLimit: %w", err)
	}
	for name, v := range map[string]int{
		"server.readTimeoutSeconds":  c.Server.ReadTimeout,
		"server.writeTimeoutSeconds": c.Server.WriteTimeout,
		"server.idleTimeoutSeconds":  c.Server.IdleTimeout,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	return nil
}

// Timeouts returns the server read, write and idle timeouts.
func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second
}
