package dashboard

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/leapstack-labs/zfdash/internal/loader"
	"github.com/leapstack-labs/zfdash/internal/source"
)

// Store holds the current dataset snapshot. Readers always see a complete
// snapshot; Reload swaps in a new one only after it loaded successfully.
type Store struct {
	current atomic.Pointer[loader.Dataset]
	cfg     source.Config
	logger  *slog.Logger
}

// NewStore creates a store that loads from cfg.
func NewStore(cfg source.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{cfg: cfg, logger: logger}
}

// Current returns the installed snapshot, or nil before the first load.
func (s *Store) Current() *loader.Dataset {
	return s.current.Load()
}

// Reload loads the source again. On failure the previous snapshot is kept.
func (s *Store) Reload(ctx context.Context) (*loader.Dataset, error) {
	ds, err := loader.Load(ctx, s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.current.Store(ds)
	return ds, nil
}

// Path returns the watched dataset path, if the source is file based.
func (s *Store) Path() string {
	return s.cfg.Path
}
