package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleCSV is a small restaurant dataset using the legacy headers.
const SampleCSV = `Restaurant ID,Restaurant Name,Country Code,City,Cuisines,Average Cost for two,Currency,Aggregate rating,Votes,Price range,Has Online delivery,Is delivering now,Has Table booking
1,Churrascaria Gaúcha,Brazil,Rio de Janeiro,"Brazilian, BBQ",250,Brazilian Real(R$),4.5,120,4,No,No,Yes
2,Boteco,Brazil,São Paulo,"Brasileira, Bar Food",80,Brazilian Real(R$),3.1,40,2,Yes,Yes,No
3,Sushi Place,United States of America,Houston,"Japanese, Sushi",60,Dollar($),4.2,300,3,Yes,No,No
4,Smokehouse,United States of America,Houston,"BBQ, American",40,Dollar($),2.1,90,2,No,No,Yes
5,Trattoria,Italy,Rome,"Italian, Pizza",70,Euro(€),4.8,,4,Yes,Yes,No
6,Pan Diner,United States of America,Austin,"Pan-American, Italian",n/a,Dollar($),2.4,10,1,0,0,0
`

// WriteFile writes content to name inside a fresh temp dir and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// WriteSampleCSV writes SampleCSV and returns its path.
func WriteSampleCSV(t testing.TB) string {
	t.Helper()
	return WriteFile(t, "zomato.csv", SampleCSV)
}
