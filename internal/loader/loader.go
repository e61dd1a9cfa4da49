// Package loader turns a configured source into an immutable dataset snapshot.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/source"
)

// Dataset is one loaded, normalized table.
type Dataset struct {
	ID       uuid.UUID      `json:"id"`
	Source   string         `json:"source"`
	Path     string         `json:"path,omitempty"`
	Rows     int            `json:"rows"`
	Columns  []string       `json:"columns"`
	LoadedAt time.Time      `json:"loaded_at"`
	Table    *dataset.Table `json:"-"`
}

// Load reads cfg and normalizes the result. Missing columns and unreadable
// input are returned as *dataset.MissingColumnsError and dataset.ErrMalformedInput.
func Load(ctx context.Context, cfg source.Config, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	src, err := source.New(cfg, source.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := src.Open(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", src.Name(), err)
	}
	defer func() { _ = src.Close() }()

	raw, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s source: %w", src.Name(), err)
	}

	ds, err := FromRaw(raw)
	if err != nil {
		return nil, err
	}
	ds.Source = src.Name()
	ds.Path = cfg.Path

	logger.Info("dataset loaded",
		slog.String("id", ds.ID.String()),
		slog.String("source", ds.Source),
		slog.String("path", ds.Path),
		slog.Int("rows", ds.Rows),
		slog.Duration("elapsed", time.Since(start)))
	return ds, nil
}

// FromRaw normalizes an already read raw table.
func FromRaw(raw *dataset.RawTable) (*Dataset, error) {
	table, err := dataset.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		ID:       uuid.New(),
		Rows:     table.Len(),
		Columns:  table.Columns(),
		LoadedAt: time.Now().UTC(),
		Table:    table,
	}, nil
}
