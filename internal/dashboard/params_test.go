package dashboard

import (
	"net/url"
	"testing"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParams(t *testing.T) {
	q := url.Values{
		"country":       {"Brazil", "India"},
		"cuisine":       {" BBQ ", ""},
		"top_n":         {"3", "9"},
		"cuisine_top_n": {"5"},
		"unrelated":     {"x"},
	}

	p, err := decodeParams(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brazil", "India"}, p.Country)
	assert.Empty(t, p.City)
	assert.Equal(t, 3, p.TopN)
	assert.Equal(t, 5, p.CuisineTopN)

	got := p.params(aggregate.DefaultParams())
	assert.Equal(t, aggregate.Params{TopN: 3, CuisineTopN: 5}, got)
}

func TestDecodeParams_Invalid(t *testing.T) {
	_, err := decodeParams(url.Values{"top_n": {"many"}})
	assert.Error(t, err)

	_, err = decodeParams(url.Values{"top_n": {"-1"}})
	assert.Error(t, err)
}

func TestFilterSet_AbsentMeansAll(t *testing.T) {
	table := dataset.NewTable([]dataset.Restaurant{
		{Country: "Brazil", City: "Rio"},
		{Country: "India", City: "Goa"},
	})

	s := requestParams{}.filterSet(table)
	assert.Equal(t, []string{"Brazil", "India"}, s.Countries)
	assert.Equal(t, []string{"Goa", "Rio"}, s.Cities)

	s = requestParams{Country: []string{"India", "India"}, Cuisine: []string{" BBQ "}}.filterSet(table)
	assert.Equal(t, []string{"India"}, s.Countries)
	assert.Equal(t, []string{"Goa", "Rio"}, s.Cities)
	assert.Equal(t, []string{"BBQ"}, s.Cuisines)
}
