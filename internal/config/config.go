// Package config assembles server configuration from defaults, an
// optional YAML file, and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file loaded when present in the working directory.
const DefaultFile = "taskd.yaml"

// Config holds all server configuration.
type Config struct {
	// Port is the TCP port the HTTP API listens on.
	Port int `yaml:"port"`
	// DBPath is the task database file.
	DBPath string `yaml:"db_path"`
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	return &Config{
		Port:   3000,
		DBPath: "tasks.json",
	}
}

// LoadFile overlays settings from a YAML config file. A missing file is
// not an error; a malformed one is.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnvironment overlays settings from environment variables.
func (c *Config) LoadFromEnvironment() {
	if port := os.Getenv("TASKD_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Port = p
		}
	}

	if dbPath := os.Getenv("TASKD_DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", c.Port)
	}

	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	return nil
}
