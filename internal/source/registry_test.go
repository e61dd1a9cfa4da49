package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfRegistration(t *testing.T) {
	for _, name := range []string{"csv", "duckdb", "sqlite", "postgres"} {
		assert.True(t, IsRegistered(name), "%s source should be auto-registered", name)
	}
	assert.Equal(t, []string{"csv", "duckdb", "postgres", "sqlite"}, List())
}

func TestGet(t *testing.T) {
	factory, ok := Get("csv")
	require.True(t, ok)
	require.NotNil(t, factory)
	assert.Equal(t, "csv", factory(nil).Name())

	_, ok = Get("nonexistent")
	assert.False(t, ok)
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(Config{Type: "excel"})
	require.Error(t, err)

	var unknownErr *UnknownSourceError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "excel", unknownErr.Type)
	assert.Contains(t, unknownErr.Available, "csv")
	assert.Contains(t, err.Error(), "Hint:")
}

func TestNew_DetectsType(t *testing.T) {
	src, err := New(Config{Path: "zomato.csv"})
	require.NoError(t, err)
	assert.Equal(t, "csv", src.Name())

	_, err = New(Config{Path: "zomato.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be detected")
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
		ok   bool
	}{
		{"csv", Config{Path: "data/zomato.csv"}, "csv", true},
		{"tsv upper case", Config{Path: "ZOMATO.TSV"}, "csv", true},
		{"parquet", Config{Path: "zomato.parquet"}, "duckdb", true},
		{"duckdb file", Config{Path: "warehouse.duckdb"}, "duckdb", true},
		{"sqlite", Config{Path: "zomato.sqlite3"}, "sqlite", true},
		{"postgres dsn", Config{DSN: "postgres://u:p@localhost/db"}, "postgres", true},
		{"unknown", Config{Path: "zomato.json"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.cfg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
