package source

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory builds a source that logs to logger.
type Factory func(logger *slog.Logger) Source

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a source factory to the registry.
// Called by source implementations in their init() functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a source factory by name.
func Get(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// List returns all registered source names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a source type is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

type options struct {
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger handed to the source.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a source for cfg. An empty type is detected from the path or DSN.
func New(cfg Config, opts ...Option) (Source, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	typ := cfg.Type
	if typ == "" {
		detected, ok := Detect(cfg)
		if !ok {
			return nil, fmt.Errorf("source type not specified and cannot be detected from %q", cfg.Path)
		}
		typ = detected
	}

	factory, ok := Get(typ)
	if !ok {
		return nil, &UnknownSourceError{Type: typ, Available: List()}
	}
	return factory(o.logger), nil
}

// Detect guesses the source type from the DSN scheme or the path extension.
func Detect(cfg Config) (string, bool) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return "postgres", true
	}
	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".csv", ".tsv", ".txt":
		return "csv", true
	case ".parquet", ".duckdb", ".ddb":
		return "duckdb", true
	case ".sqlite", ".sqlite3", ".db":
		return "sqlite", true
	}
	return "", false
}

// UnknownSourceError is returned when an unknown source type is requested.
type UnknownSourceError struct {
	Type      string
	Available []string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source type %q\nAvailable sources: %v\nHint: Check source.type in zfdash.yaml", e.Type, e.Available)
}
