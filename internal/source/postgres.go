package source

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

func init() {
	Register("postgres", func(logger *slog.Logger) Source { return NewPostgres(logger) })
}

// Postgres reads a table from a PostgreSQL database.
type Postgres struct {
	BaseSQL
}

// NewPostgres creates a PostgreSQL source. If logger is nil, a discard logger is used.
func NewPostgres(logger *slog.Logger) *Postgres {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Postgres{BaseSQL: BaseSQL{Logger: logger}}
}

// Name returns "postgres".
func (p *Postgres) Name() string { return "postgres" }

// Open connects using source.dsn, or a DSN built from the host fields.
func (p *Postgres) Open(ctx context.Context, cfg Config) error {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = buildPostgresDSN(cfg)
	}
	p.Logger.Debug("connecting to postgres", slog.String("host", cfg.Host), slog.String("database", cfg.Database))
	return p.connect(ctx, "pgx", dsn, cfg)
}

// Read returns every row of the configured table.
func (p *Postgres) Read(ctx context.Context) (*dataset.RawTable, error) {
	return p.ReadTable(ctx, p.Cfg.Table)
}

// buildPostgresDSN constructs a key=value PostgreSQL connection string.
func buildPostgresDSN(cfg Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if mode, ok := cfg.Options["sslmode"]; ok {
		sslmode = mode
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s", host, port, cfg.Database, sslmode)
	if cfg.User != "" {
		dsn += fmt.Sprintf(" user=%s", cfg.User)
	}
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}
	return dsn
}
