package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCSV_ReadInfersKinds(t *testing.T) {
	path := writeFile(t, "zomato.csv", "\ufeffRestaurant ID,Country,Votes,Rating,Flag,Cuisines\n"+
		"1,Brazil,10,4.5,True,\"Brazilian, BBQ\"\n"+
		"2,India,,3,false,\n"+
		"3,USA,7,n/a,TRUE,American\n")

	raw, err := ReadAll(context.Background(), Config{Path: path}, WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, []string{"Restaurant ID", "Country", "Votes", "Rating", "Flag", "Cuisines"}, raw.Columns)
	require.Len(t, raw.Rows, 3)

	assert.Equal(t, dataset.IntValue(1), raw.Rows[0][0])
	assert.Equal(t, dataset.StringValue("Brazil"), raw.Rows[0][1])
	assert.Equal(t, dataset.IntValue(10), raw.Rows[0][2])
	assert.True(t, raw.Rows[1][2].IsNull())
	assert.Equal(t, dataset.StringValue("4.5"), raw.Rows[0][3], "a non-numeric cell keeps the column textual")
	assert.Equal(t, dataset.BoolValue(true), raw.Rows[2][4])
	assert.Equal(t, dataset.BoolValue(false), raw.Rows[1][4])
	assert.Equal(t, dataset.StringValue("Brazilian, BBQ"), raw.Rows[0][5])
	assert.True(t, raw.Rows[1][5].IsNull())
}

func TestCSV_FloatColumn(t *testing.T) {
	path := writeFile(t, "f.csv", "cost\n10\n12.5\n")
	raw, err := ReadAll(context.Background(), Config{Type: "csv", Path: path})
	require.NoError(t, err)
	assert.Equal(t, dataset.FloatValue(10), raw.Rows[0][0])
	assert.Equal(t, dataset.FloatValue(12.5), raw.Rows[1][0])
}

func TestCSV_Delimiters(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		delimiter string
	}{
		{"semicolon", "a.csv", "a;b\n1;x\n", ";"},
		{"tsv by extension", "a.tsv", "a\tb\n1\tx\n", ""},
		{"escaped tab", "a.txt", "a\tb\n1\tx\n", `\t`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			raw, err := ReadAll(context.Background(), Config{Type: "csv", Path: path, Delimiter: tt.delimiter})
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, raw.Columns)
			assert.Equal(t, []dataset.Value{dataset.IntValue(1), dataset.StringValue("x")}, raw.Rows[0])
		})
	}
}

func TestCSV_ShortRowsAreKept(t *testing.T) {
	path := writeFile(t, "short.csv", "a,b,c\n1,2\n")
	raw, err := ReadAll(context.Background(), Config{Type: "csv", Path: path})
	require.NoError(t, err)
	require.Len(t, raw.Rows, 1)
	assert.True(t, raw.Cell(0, 2).IsNull())
}

func TestCSV_Errors(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.csv", "")
		_, err := ReadAll(context.Background(), Config{Type: "csv", Path: path})
		require.Error(t, err)
		assert.ErrorIs(t, err, dataset.ErrMalformedInput)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAll(context.Background(), Config{Type: "csv", Path: filepath.Join(t.TempDir(), "nope.csv")})
		assert.ErrorIs(t, err, dataset.ErrMalformedInput)
	})

	t.Run("bad delimiter", func(t *testing.T) {
		err := NewCSV(nil).Open(context.Background(), Config{Path: "x.csv", Delimiter: ";;"})
		assert.Error(t, err)
	})

	t.Run("missing path", func(t *testing.T) {
		err := NewCSV(nil).Open(context.Background(), Config{})
		assert.Error(t, err)
	})
}

func TestCSV_ContextCancelled(t *testing.T) {
	path := writeFile(t, "a.csv", "a\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadAll(ctx, Config{Type: "csv", Path: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
