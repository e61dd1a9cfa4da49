// Package source reads restaurant datasets from files and databases into
// raw tables ready for normalization.
package source

import (
	"context"

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// Config selects and parameterizes a source.
type Config struct {
	Type      string            `koanf:"type" json:"type"`
	Path      string            `koanf:"path" json:"path,omitempty"`
	DSN       string            `koanf:"dsn" json:"-"`
	Table     string            `koanf:"table" json:"table,omitempty"`
	Delimiter string            `koanf:"delimiter" json:"delimiter,omitempty"`
	Host      string            `koanf:"host" json:"host,omitempty"`
	Port      int               `koanf:"port" json:"port,omitempty"`
	Database  string            `koanf:"database" json:"database,omitempty"`
	User      string            `koanf:"user" json:"user,omitempty"`
	Password  string            `koanf:"password" json:"-"`
	Options   map[string]string `koanf:"options" json:"options,omitempty"`
}

// Source reads one dataset.
type Source interface {
	// Name returns the registered source type.
	Name() string
	// Open prepares the source for reading.
	Open(ctx context.Context, cfg Config) error
	// Read returns the whole dataset as a raw table.
	Read(ctx context.Context) (*dataset.RawTable, error)
	// Close releases any handle held by the source.
	Close() error
}

// ReadAll opens a source for cfg, reads it and closes it.
func ReadAll(ctx context.Context, cfg Config, opts ...Option) (*dataset.RawTable, error) {
	src, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := src.Open(ctx, cfg); err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return src.Read(ctx)
}
