package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

func init() {
	Register("duckdb", func(logger *slog.Logger) Source { return NewDuckDB(logger) })
}

// DuckDB reads CSV or Parquet files through DuckDB's readers, or a table
// stored in a DuckDB database file.
type DuckDB struct {
	BaseSQL
}

// NewDuckDB creates a DuckDB source. If logger is nil, a discard logger is used.
func NewDuckDB(logger *slog.Logger) *DuckDB {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DuckDB{BaseSQL: BaseSQL{Logger: logger}}
}

// Name returns "duckdb".
func (d *DuckDB) Name() string { return "duckdb" }

// Open connects to the database file, or an in-memory database when the
// path names a CSV or Parquet file.
func (d *DuckDB) Open(ctx context.Context, cfg Config) error {
	dbPath := ""
	if isDuckDBFile(cfg.Path) {
		dbPath = cfg.Path
	}
	d.Logger.Debug("opening duckdb", slog.String("path", cfg.Path), slog.Bool("in_memory", dbPath == ""))
	return d.connect(ctx, "duckdb", dbPath, cfg)
}

func isDuckDBFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".duckdb", ".ddb", ".db":
		return true
	}
	return false
}

// Read returns the file or table contents.
func (d *DuckDB) Read(ctx context.Context) (*dataset.RawTable, error) {
	query, err := d.query()
	if err != nil {
		return nil, err
	}
	return d.ReadQuery(ctx, query)
}

func (d *DuckDB) query() (string, error) {
	cfg := d.Cfg
	switch ext := strings.ToLower(filepath.Ext(cfg.Path)); {
	case isDuckDBFile(cfg.Path):
		if cfg.Table == "" {
			return "", fmt.Errorf("source.table is required for duckdb database files")
		}
		return "SELECT * FROM " + QuoteIdent(cfg.Table), nil
	case ext == ".parquet":
		return fmt.Sprintf("SELECT * FROM read_parquet(%s)", quoteLiteral(cfg.Path)), nil
	case cfg.Path != "":
		opts := "header = true"
		if cfg.Delimiter != "" {
			comma, err := delimiter(cfg)
			if err != nil {
				return "", err
			}
			opts += ", delim = " + quoteLiteral(string(comma))
		}
		return fmt.Sprintf("SELECT * FROM read_csv_auto(%s, %s)", quoteLiteral(cfg.Path), opts), nil
	}
	return "", fmt.Errorf("source.path is required for duckdb sources")
}
