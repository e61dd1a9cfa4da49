package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

func init() {
	Register("csv", func(logger *slog.Logger) Source { return NewCSV(logger) })
}

// CSV reads a delimited text file with a header row.
type CSV struct {
	cfg    Config
	comma  rune
	logger *slog.Logger
}

// NewCSV creates a CSV source. If logger is nil, a discard logger is used.
func NewCSV(logger *slog.Logger) *CSV {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CSV{logger: logger}
}

// Name returns "csv".
func (c *CSV) Name() string { return "csv" }

// Open validates the path and delimiter.
func (c *CSV) Open(_ context.Context, cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("source.path is required for csv sources")
	}
	comma, err := delimiter(cfg)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.comma = comma
	return nil
}

func delimiter(cfg Config) (rune, error) {
	d := cfg.Delimiter
	switch {
	case d == "" && strings.EqualFold(filepath.Ext(cfg.Path), ".tsv"):
		return '\t', nil
	case d == "":
		return ',', nil
	case d == `\t` || d == "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if size != len(d) || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", d)
	}
	return r, nil
}

// Read parses the whole file.
func (c *CSV) Read(ctx context.Context) (*dataset.RawTable, error) {
	f, err := os.Open(c.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataset.ErrMalformedInput, err)
	}
	defer func() { _ = f.Close() }()

	raw, err := c.parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dataset.ErrMalformedInput, c.cfg.Path, err)
	}
	c.logger.Debug("read csv", slog.String("path", c.cfg.Path), slog.Int("rows", len(raw.Rows)))
	return raw, nil
}

// Close is a no-op; the file is closed after Read.
func (c *CSV) Close() error { return nil }

func (c *CSV) parse(ctx context.Context, r io.Reader) (*dataset.RawTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = c.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	kinds := inferKinds(len(header), records)
	raw := &dataset.RawTable{Columns: header, Rows: make([][]dataset.Value, 0, len(records))}
	for _, rec := range records {
		row := make([]dataset.Value, len(rec))
		for j, cell := range rec {
			k := dataset.KindString
			if j < len(kinds) {
				k = kinds[j]
			}
			row[j] = parseCell(cell, k)
		}
		raw.Rows = append(raw.Rows, row)
	}
	return raw, nil
}

// inferKinds picks the narrowest kind every non-blank cell of a column fits:
// int, then float, then bool, otherwise string.
func inferKinds(width int, records [][]string) []dataset.Kind {
	kinds := make([]dataset.Kind, width)
	for j := range kinds {
		isInt, isFloat, isBool, seen := true, true, true, false
		for _, rec := range records {
			if j >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[j])
			if cell == "" {
				continue
			}
			seen = true
			if isInt {
				if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
					isInt = false
				}
			}
			if isFloat {
				if _, err := strconv.ParseFloat(cell, 64); err != nil {
					isFloat = false
				}
			}
			if isBool {
				if !strings.EqualFold(cell, "true") && !strings.EqualFold(cell, "false") {
					isBool = false
				}
			}
		}
		switch {
		case !seen:
			kinds[j] = dataset.KindString
		case isInt:
			kinds[j] = dataset.KindInt
		case isFloat:
			kinds[j] = dataset.KindFloat
		case isBool:
			kinds[j] = dataset.KindBool
		default:
			kinds[j] = dataset.KindString
		}
	}
	return kinds
}

func parseCell(cell string, kind dataset.Kind) dataset.Value {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return dataset.NullValue()
	}
	switch kind {
	case dataset.KindInt:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return dataset.IntValue(n)
		}
	case dataset.KindFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return dataset.FloatValue(f)
		}
	case dataset.KindBool:
		return dataset.BoolValue(strings.EqualFold(trimmed, "true"))
	}
	return dataset.StringValue(cell)
}
