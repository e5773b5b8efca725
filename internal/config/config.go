// Package config loads CLI settings from a YAML file over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every setting the otherdata CLI reads.
type Config struct {
	Logging Logging `yaml:"logging"`
	Output  Output  `yaml:"output"`
	Codec   Codec   `yaml:"codec"`
	Frame   Frame   `yaml:"frame"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Output struct {
	// Format is one of text, json, yaml.
	Format string `yaml:"format"`
}

type Codec struct {
	Numeric     bool `yaml:"numeric"`
	AllowBase64 bool `yaml:"allow_base64"`
}

type Frame struct {
	Compress        bool `yaml:"compress"`
	MinCompressSize int  `yaml:"min_compress_size"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "text"},
		Output:  Output{Format: "text"},
		Codec:   Codec{AllowBase64: true},
		Frame:   Frame{Compress: true, MinCompressSize: 256},
	}
}

// LoadConfig reads path and overlays it on DefaultConfig. Keys missing from
// the file keep their default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	if c.Frame.MinCompressSize < 0 {
		return fmt.Errorf("min_compress_size must not be negative")
	}
	return nil
}
