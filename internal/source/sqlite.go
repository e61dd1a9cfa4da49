package source

import (
	"context"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

func init() {
	Register("sqlite", func(logger *slog.Logger) Source { return NewSQLite(logger) })
}

// SQLite reads a table from a SQLite database file.
type SQLite struct {
	BaseSQL
}

// NewSQLite creates a SQLite source. If logger is nil, a discard logger is used.
func NewSQLite(logger *slog.Logger) *SQLite {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLite{BaseSQL: BaseSQL{Logger: logger}}
}

// Name returns "sqlite".
func (s *SQLite) Name() string { return "sqlite" }

// Open connects to the database file.
func (s *SQLite) Open(ctx context.Context, cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("source.path is required for sqlite sources")
	}
	s.Logger.Debug("opening sqlite", slog.String("path", cfg.Path))
	return s.connect(ctx, "sqlite", cfg.Path, cfg)
}

// Read returns every row of the configured table.
func (s *SQLite) Read(ctx context.Context) (*dataset.RawTable, error) {
	return s.ReadTable(ctx, s.Cfg.Table)
}
