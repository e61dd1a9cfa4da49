package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanBy_IgnoresNulls(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio", rating(num(10))),
		restaurant(2, "b", "Brazil", "Rio", rating(null)),
		restaurant(3, "c", "Brazil", "Rio", rating(num(20))),
	)

	got := MeanBy(rows, ByCountry, Rating, Descending)
	require.Len(t, got, 1)
	assert.Equal(t, Some(15), got[0].Value)
}

func TestMeanBy_AllNullGroupIsNoData(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio", rating(null)),
		restaurant(2, "b", "India", "Goa", rating(num(3))),
	)

	got := MeanBy(rows, ByCountry, Rating, Descending)
	require.Len(t, got, 2)
	assert.Equal(t, "India", got[0].Key)
	assert.Equal(t, "Brazil", got[1].Key)
	assert.False(t, got[1].Value.Valid)
	assert.Equal(t, NoData, got[1].Value.String())
}

func TestSumBy_VotesByCountry(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio", votes(num(10))),
		restaurant(2, "b", "Brazil", "Rio", votes(null)),
		restaurant(3, "c", "USA", "Austin", votes(num(5))),
	)

	got := SumBy(rows, ByCountry, Votes)
	assert.Equal(t, Series{
		{Key: "Brazil", Value: Some(10)},
		{Key: "USA", Value: Some(5)},
	}, got)
}

func TestCountDistinctIDs_DoesNotDoubleCount(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio"),
		restaurant(1, "a", "Brazil", "Rio"),
		restaurant(2, "b", "Brazil", "Rio"),
		restaurant(3, "c", "India", "Goa"),
	)

	got := CountDistinctIDs(rows, ByCountry)
	assert.Equal(t, Series{
		{Key: "Brazil", Value: Some(2)},
		{Key: "India", Value: Some(1)},
	}, got)
}

func TestCountCuisinesBy_ExplodedDistinct(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio", cuisines("Italian, Pizza, Italian")),
		restaurant(2, "b", "Brazil", "Rio", cuisines("Japanese")),
		restaurant(3, "c", "USA", "Austin", cuisines("Italian, Italian")),
		restaurant(4, "d", "USA", "Austin", cuisines("Japanese")),
		restaurant(5, "e", "USA", "Austin"),
		restaurant(6, "f", "Italy", "Rome"),
	)

	got := CountCuisinesBy(Explode(rows), ByCountry)
	assert.Equal(t, Series{
		{Key: "Brazil", Value: Some(3)},
		{Key: "USA", Value: Some(2)},
	}, got, "rows without cuisines contribute nothing")

	byCity := CountCuisinesBy(Explode(rows), ByCity)
	require.Len(t, byCity, 2)
	assert.Equal(t, "Rio", byCity[0].Key)
}

func TestSeriesSorted_TiesByKey(t *testing.T) {
	s := Series{
		{Key: "b", Value: Some(1)},
		{Key: "z", Value: None()},
		{Key: "c", Value: Some(2)},
		{Key: "a", Value: Some(1)},
	}

	desc := s.Sorted(Descending)
	assert.Equal(t, []string{"c", "a", "b", "z"}, keys(desc))

	asc := s.Sorted(Ascending)
	assert.Equal(t, []string{"a", "b", "c", "z"}, keys(asc))

	assert.Equal(t, "b", s[0].Key, "Sorted must not reorder the receiver")
}

func keys(s Series) []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Key
	}
	return out
}

func TestSeries_TopAndLabel(t *testing.T) {
	s := Series{{Key: "a", Value: Some(3)}, {Key: "b", Value: Some(2)}, {Key: "c", Value: Some(1)}}
	assert.Len(t, s.Top(2), 2)
	assert.Len(t, s.Top(0), 3)
	assert.Len(t, s.Top(10), 3)
	assert.Equal(t, LabelOf("a"), s.TopLabel())

	assert.False(t, Series{{Key: "x", Value: None()}}.TopLabel().Valid)
	assert.Equal(t, NoData, Series(nil).TopLabel().String())
}

func TestGroupBy_SkipsEmptyKeys(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "", "Rio"),
		restaurant(2, "b", "India", "Goa"),
	)
	got := CountDistinctIDs(rows, ByCountry)
	assert.Equal(t, []string{"India"}, keys(got))
}

func TestExplode(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "a", "Brazil", "Rio", cuisines("Brazilian, BBQ, Bar Food")),
		restaurant(2, "b", "Brazil", "Rio"),
	)
	exploded := Explode(rows)
	require.Len(t, exploded, 3)
	assert.Equal(t, "Bar Food", exploded[2].Cuisine)
	assert.Equal(t, "a", exploded[2].Row.Name)
}

func TestTopRow(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "first", "Brazil", "Rio", votes(num(5))),
		restaurant(2, "null", "Brazil", "Rio", votes(null)),
		restaurant(3, "second", "Brazil", "Rio", votes(num(5))),
		restaurant(4, "low", "Brazil", "Rio", votes(num(1))),
	)

	top, ok := TopRow(rows, Votes, Descending)
	require.True(t, ok)
	assert.Equal(t, "first", top.Name)

	bottom, ok := TopRow(rows, Votes, Ascending)
	require.True(t, ok)
	assert.Equal(t, "low", bottom.Name)

	_, ok = TopRow(nil, Votes, Descending)
	assert.False(t, ok)

	_, ok = TopRow(rowsOf(restaurant(1, "x", "a", "b")), Votes, Descending)
	assert.False(t, ok, "rows with only null values have no top row")
}

func TestTopRows_NullsLast(t *testing.T) {
	rows := rowsOf(
		restaurant(1, "null", "Brazil", "Rio", votes(null)),
		restaurant(2, "mid", "Brazil", "Rio", votes(num(5))),
		restaurant(3, "high", "Brazil", "Rio", votes(num(9))),
	)

	got := TopRows(rows, Votes, Descending, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
	assert.Equal(t, "null", got[2].Name)

	assert.Len(t, TopRows(rows, Votes, Descending, 2), 2)
}

func TestCuisineTopBottom(t *testing.T) {
	exploded := Explode(sampleTable().Rows())

	top, bottom, ok := CuisineTopBottom(exploded, "italian")
	require.True(t, ok)
	assert.Equal(t, "Trattoria", top.Name)
	assert.Equal(t, "Pan Diner", bottom.Name)

	_, _, ok = CuisineTopBottom(exploded, "Klingon")
	assert.False(t, ok)

	// "American" is an exact token of the exploded list only for Smokehouse.
	top, bottom, ok = CuisineTopBottom(exploded, "American")
	require.True(t, ok)
	assert.Equal(t, "Smokehouse", top.Name)
	assert.Equal(t, "Smokehouse", bottom.Name)
}

func TestTopBottom_KlingonIsNoData(t *testing.T) {
	res := TopBottom(sampleTable().Rows(), "Klingon")
	require.NotNil(t, res.Extremes)
	assert.Equal(t, KindExtremes, res.Kind)
	assert.Equal(t, NoData, res.Extremes.Highest.String())
	assert.Equal(t, NoData, res.Extremes.Lowest.String())
}

func TestPredicates(t *testing.T) {
	rows := sampleTable().Rows()

	assert.Len(t, Where(rows, PriceRange(4)), 2)
	assert.Len(t, Where(rows, RatingAbove(4)), 3)
	assert.Len(t, Where(rows, RatingBelow(2.5)), 2)
	assert.Len(t, Where(rows, And(OnlineDelivery, DeliveringNow)), 2)
	assert.Len(t, Where(rows, CuisineMatch("Brazilian", "Brasileira")), 2)
	assert.Len(t, Where(rows, CuisineMatch("American")), 2, "Pan-American matches at the hyphen boundary")
	assert.Len(t, Where(rows, CuisineMatch("America")), 0)
	assert.Len(t, Where(rows, CountryIn("UNITED STATES OF AMERICA")), 3)
}

func TestCompareByFlag(t *testing.T) {
	rows := sampleTable().Rows()

	c := CompareByFlag(rows, OnlineDelivery, Votes, "With", "Without")
	require.Len(t, c.Entries, 2)
	// With online delivery: 40, 300 and a null.
	assert.Equal(t, Some(170), c.Entries[0].Value)
	// Without: 120, 90, 10.
	assert.Equal(t, Some(220.0/3), c.Entries[1].Value)
	assert.Equal(t, "With > Without", c.Greater())
}

func TestComparison_InsufficientData(t *testing.T) {
	c := CompareSubsets(nil, Cost,
		Subset{Label: "A", Keep: func(Row) bool { return true }},
		Subset{Label: "B", Keep: func(Row) bool { return true }},
	)
	assert.Equal(t, "insufficient data", c.Greater())
	assert.Equal(t, NoData, c.Entries[0].Value.String())
}

func TestAccumulators(t *testing.T) {
	assert.Nil(t, NewAccumulator("median"))

	count := NewAccumulator("count")
	count.Add(nil).Add(num(1))
	assert.Equal(t, Some(2), count.Result())

	distinct := NewAccumulator("distinct")
	distinct.Add("a").Add("a").Add("").Add(nil)
	assert.Equal(t, Some(1), distinct.Result())

	sum := NewAccumulator("sum")
	assert.Equal(t, None(), sum.Result())
	sum.Add(1).Add(int64(2)).Add(2.5).Add(null)
	assert.Equal(t, Some(5.5), sum.Result())
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal(Series{{Key: "a", Value: Some(1.5)}, {Key: "b", Value: None()}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"a","value":1.5},{"key":"b","value":null}]`, string(b))

	b, err = json.Marshal(Label{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
