package dataset

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize maps raw columns onto the canonical schema, coerces types and
// derives the cuisine features. It fails with *MissingColumnsError when a
// required column is absent after aliasing; no partial table is returned.
func Normalize(raw *RawTable) (*Table, error) {
	if raw == nil {
		return nil, ErrMalformedInput
	}

	renamed := RenameColumns(raw.Columns)

	// Canonical headers win over legacy aliases that resolve to the same name.
	index := make(map[string]int, len(renamed))
	for i, h := range raw.Columns {
		if name, ok := CanonicalName(h); ok && name == h {
			index[name] = i
		}
	}
	for i, name := range renamed {
		if _, taken := index[name]; !taken {
			index[name] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns() {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	caser := cases.Lower(language.Und)
	col := func(i int, name string) Value {
		j, ok := index[name]
		if !ok {
			return NullValue()
		}
		return raw.Cell(i, j)
	}

	rows := make([]Restaurant, len(raw.Rows))
	for i := range raw.Rows {
		r := &rows[i]
		r.ID = CoerceInt(col(i, ColRestaurantID))
		r.Name = col(i, ColRestaurantName).Text()
		r.Country = col(i, ColCountry).Text()
		r.City = col(i, ColCity).Text()
		r.Currency = col(i, ColCurrency).Text()
		r.RatingText = col(i, ColRatingText).Text()
		r.AverageCostForTwo = CoerceFloat(col(i, ColAverageCostForTwo))
		r.AggregateRating = CoerceFloat(col(i, ColAggregateRating))
		r.Votes = CoerceFloat(col(i, ColVotes))
		r.PriceRange = CoerceInt(col(i, ColPriceRange))
		r.HasOnlineDelivery = CoerceFlag(col(i, ColHasOnlineDelivery))
		r.IsDeliveringNow = CoerceFlag(col(i, ColIsDeliveringNow))
		r.HasTableBooking = CoerceFlag(col(i, ColHasTableBooking))

		cuisines := col(i, ColCuisines)
		if cuisines.IsNull() {
			r.Cuisines = []string{}
			continue
		}
		text := cuisines.Str()
		if cuisines.Kind() != KindString {
			text = cuisines.Text()
		}
		r.CuisinesRaw = NullString{String: text, Valid: true}
		r.Cuisines = SplitCuisines(text)
		r.CuisinesLower = caser.String(text)
	}

	return &Table{rows: rows, columns: renamed}, nil
}
