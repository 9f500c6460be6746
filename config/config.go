// Package config loads and validates the YAML configuration used by the
// CLI and the persistence collaborators.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/RomanoLab/ista/errors"
)

// Config is the complete application configuration.
type Config struct {
	Version       string            `yaml:"version"`
	DefaultFormat string            `yaml:"default_format"`
	Prefixes      map[string]string `yaml:"prefixes,omitempty"`
	Store         StoreConfig       `yaml:"store"`
	Neo4j         Neo4jConfig       `yaml:"neo4j"`
	Logging       LoggingConfig     `yaml:"logging"`
}

// StoreConfig configures the local ontology store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Neo4jConfig configures the graph export target.
type Neo4jConfig struct {
	URI       string `yaml:"uri"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	BatchSize int    `yaml:"batch_size"`
}

// LoggingConfig configures structured logging output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:       "1.0.0",
		DefaultFormat: "functional",
		Store:         StoreConfig{Path: "./ista-store"},
		Neo4j: Neo4jConfig{
			URI:       "neo4j://localhost:7687",
			Username:  "neo4j",
			Database:  "neo4j",
			BatchSize: 500,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file, fills unset fields with defaults,
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config", "Load", "read "+path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "config", "Load",
			fmt.Sprintf("parse %s: %v", path, err))
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run
// with.
func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.Wrap(errors.ErrMissingConfig, "config", "Validate", "version is required")
	}
	switch c.DefaultFormat {
	case "functional", "rdfxml", "turtle", "manchester", "owlxml":
	default:
		return errors.Wrap(errors.ErrInvalidConfig, "config", "Validate",
			fmt.Sprintf("unknown default_format %q", c.DefaultFormat))
	}
	if c.Store.Path == "" {
		return errors.Wrap(errors.ErrMissingConfig, "config", "Validate", "store.path is required")
	}
	if c.Neo4j.BatchSize <= 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "config", "Validate",
			fmt.Sprintf("neo4j.batch_size must be positive, got %d", c.Neo4j.BatchSize))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrap(errors.ErrInvalidConfig, "config", "Validate",
			fmt.Sprintf("unknown logging.level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Wrap(errors.ErrInvalidConfig, "config", "Validate",
			fmt.Sprintf("unknown logging.format %q", c.Logging.Format))
	}
	return nil
}

// applyEnvOverrides lets deployment environments override file values
// without editing the file. Credentials are the main use case.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ISTA_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("ISTA_NEO4J_URI"); v != "" {
		cfg.Neo4j.URI = v
	}
	if v := os.Getenv("ISTA_NEO4J_USERNAME"); v != "" {
		cfg.Neo4j.Username = v
	}
	if v := os.Getenv("ISTA_NEO4J_PASSWORD"); v != "" {
		cfg.Neo4j.Password = v
	}
	if v := os.Getenv("ISTA_NEO4J_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Neo4j.BatchSize = n
		}
	}
	if v := os.Getenv("ISTA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
