package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// BaseSQL provides the database/sql plumbing shared by SQL-backed sources.
// Embed it in concrete sources to get Close and ReadQuery.
type BaseSQL struct {
	DB     *sql.DB
	Cfg    Config
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQL) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// connect opens driver with dsn and pings it.
func (b *BaseSQL) connect(ctx context.Context, driver, dsn string, cfg Config) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	b.DB = db
	b.Cfg = cfg
	return nil
}

// ReadQuery runs query and collects every row as tagged values.
func (b *BaseSQL) ReadQuery(ctx context.Context, query string, args ...any) (*dataset.RawTable, error) {
	if b.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute query: %w", dataset.ErrMalformedInput, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read columns: %w", dataset.ErrMalformedInput, err)
	}

	raw := &dataset.RawTable{Columns: columns}
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row %d: %w", dataset.ErrMalformedInput, len(raw.Rows)+1, err)
		}
		row := make([]dataset.Value, len(cells))
		for i, c := range cells {
			row[i] = toValue(c)
		}
		raw.Rows = append(raw.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rows: %w", dataset.ErrMalformedInput, err)
	}

	if b.Logger != nil {
		b.Logger.Debug("read rows", slog.Int("rows", len(raw.Rows)), slog.Int("columns", len(columns)))
	}
	return raw, nil
}

// ReadTable reads every column of table.
func (b *BaseSQL) ReadTable(ctx context.Context, table string) (*dataset.RawTable, error) {
	if table == "" {
		return nil, fmt.Errorf("source.table is required")
	}
	return b.ReadQuery(ctx, "SELECT * FROM "+QuoteIdent(table)) //nolint:gosec // identifier is quoted
}

// QuoteIdent quotes a possibly schema-qualified identifier.
func QuoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}

// quoteLiteral quotes a string literal such as a file path.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toValue converts a driver value into a tagged value.
func toValue(v any) dataset.Value {
	switch x := v.(type) {
	case nil:
		return dataset.NullValue()
	case int64:
		return dataset.IntValue(x)
	case int32:
		return dataset.IntValue(int64(x))
	case int16:
		return dataset.IntValue(int64(x))
	case int8:
		return dataset.IntValue(int64(x))
	case int:
		return dataset.IntValue(int64(x))
	case uint8:
		return dataset.IntValue(int64(x))
	case uint16:
		return dataset.IntValue(int64(x))
	case uint32:
		return dataset.IntValue(int64(x))
	case uint64:
		return dataset.FloatValue(float64(x))
	case float64:
		return dataset.FloatValue(x)
	case float32:
		return dataset.FloatValue(float64(x))
	case bool:
		return dataset.BoolValue(x)
	case string:
		return dataset.StringValue(x)
	case []byte:
		return dataset.StringValue(string(x))
	case *big.Int:
		if x.IsInt64() {
			return dataset.IntValue(x.Int64())
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return dataset.FloatValue(f)
	case time.Time:
		return dataset.StringValue(x.Format(time.RFC3339))
	case fmt.Stringer:
		return dataset.StringValue(x.String())
	default:
		return dataset.StringValue(fmt.Sprint(x))
	}
}
