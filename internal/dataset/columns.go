package dataset

// Canonical column names.
const (
	ColRestaurantID      = "restaurant_id"
	ColRestaurantName    = "restaurant_name"
	ColCountry           = "country"
	ColCity              = "city"
	ColCuisines          = "cuisines"
	ColAverageCostForTwo = "average_cost_for_two"
	ColCurrency          = "currency"
	ColAggregateRating   = "aggregate_rating"
	ColRatingText        = "rating_text"
	ColVotes             = "votes"
	ColPriceRange        = "price_range"
	ColHasOnlineDelivery = "has_online_delivery"
	ColIsDeliveringNow   = "is_delivering_now"
	ColHasTableBooking   = "has_table_booking"
)

// canonicalOrder lists every recognized column in display order.
var canonicalOrder = []string{
	ColRestaurantID,
	ColRestaurantName,
	ColCountry,
	ColCity,
	ColCuisines,
	ColAverageCostForTwo,
	ColCurrency,
	ColAggregateRating,
	ColRatingText,
	ColVotes,
	ColPriceRange,
	ColHasOnlineDelivery,
	ColIsDeliveringNow,
	ColHasTableBooking,
}

// optionalColumns are recognized but not required.
var optionalColumns = map[string]bool{
	ColRatingText: true,
}

// legacyAliases maps known legacy headers to canonical names.
// Matching is exact and case-sensitive.
var legacyAliases = map[string]string{
	"Restaurant ID":        ColRestaurantID,
	"Restaurant Name":      ColRestaurantName,
	"Country Code":         ColCountry,
	"City":                 ColCity,
	"Cuisines":             ColCuisines,
	"Average Cost for two": ColAverageCostForTwo,
	"Currency":             ColCurrency,
	"Aggregate rating":     ColAggregateRating,
	"Rating text":          ColRatingText,
	"Votes":                ColVotes,
	"Price range":          ColPriceRange,
	"Has Online delivery":  ColHasOnlineDelivery,
	"Is delivering now":    ColIsDeliveringNow,
	"Has Table booking":    ColHasTableBooking,
}

// RequiredColumns returns the canonical columns a dataset must provide.
func RequiredColumns() []string {
	out := make([]string, 0, len(canonicalOrder))
	for _, c := range canonicalOrder {
		if !optionalColumns[c] {
			out = append(out, c)
		}
	}
	return out
}

// CanonicalColumns returns every recognized canonical column.
func CanonicalColumns() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// CanonicalName resolves a header to its canonical name.
// Unknown headers are returned unchanged with ok=false.
func CanonicalName(header string) (name string, ok bool) {
	if alias, found := legacyAliases[header]; found {
		return alias, true
	}
	for _, c := range canonicalOrder {
		if c == header {
			return c, true
		}
	}
	return header, false
}

// RenameColumns applies the legacy alias map in a single pass.
func RenameColumns(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i], _ = CanonicalName(h)
	}
	return out
}
