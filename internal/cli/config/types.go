// Package config provides configuration management for the zfdash CLI.
//
// Configuration is layered with koanf: built-in defaults, then zfdash.yaml,
// then ZFDASH_* environment variables (including a local .env file), then
// command-line flags.
package config

import (
	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/source"
)

// ServeConfig holds configuration for the dashboard API server.
type ServeConfig struct {
	Port           int      `koanf:"port"`
	Watch          bool     `koanf:"watch"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Config holds all CLI configuration options.
type Config struct {
	Source       source.Config    `koanf:"source"`
	Report       aggregate.Params `koanf:"report"`
	Serve        ServeConfig      `koanf:"serve"`
	Verbose      bool             `koanf:"verbose"`
	OutputFormat string           `koanf:"output"`
	LogFormat    string           `koanf:"log_format"`
}

// Default configuration values.
const (
	DefaultPort      = 8765
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogFormat = "text"
	EnvPrefix        = "ZFDASH_"
)

// configFileNames are searched in order in the working directory.
var configFileNames = []string{"zfdash.yaml", "zfdash.yml"}
