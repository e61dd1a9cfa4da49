package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/zfdash/internal/source"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json", "yaml"}
	validLogFormats = []string{"text", "json"}
)

// ErrNoDataset is returned when neither a dataset path nor a DSN is configured.
var ErrNoDataset = errors.New("no dataset configured\nHint: Pass --dataset or set source.path in zfdash.yaml")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !contains(validOutputs, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (valid: %s)", c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	if c.LogFormat != "" && !contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("invalid log format %q (valid: %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	if c.Report.TopN < 0 || c.Report.CuisineTopN < 0 {
		return fmt.Errorf("report.top_n and report.cuisine_top_n must not be negative")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d is out of range", c.Serve.Port)
	}
	if c.Source.Type != "" && !source.IsRegistered(c.Source.Type) {
		return &source.UnknownSourceError{Type: c.Source.Type, Available: source.List()}
	}
	return nil
}

// ValidateSource checks that a dataset is configured and its type can be resolved.
func (c *Config) ValidateSource() error {
	if c.Source.Path == "" && c.Source.DSN == "" && c.Source.Host == "" {
		return ErrNoDataset
	}
	if c.Source.Type == "" {
		if _, ok := source.Detect(c.Source); !ok {
			return fmt.Errorf("cannot detect source type for %q\nHint: Set source.type or pass --source-type (available: %s)",
				c.Source.Path, strings.Join(source.List(), ", "))
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
