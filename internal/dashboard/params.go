package dashboard

import (
	"fmt"
	"net/url"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/filter"
)

// requestParams is the decoded query string of a report request.
type requestParams struct {
	Country     []string `mapstructure:"country"`
	City        []string `mapstructure:"city"`
	Cuisine     []string `mapstructure:"cuisine"`
	TopN        int      `mapstructure:"top_n"`
	CuisineTopN int      `mapstructure:"cuisine_top_n"`
}

// multiValued keys keep every occurrence; other keys use their first value.
var multiValued = map[string]bool{"country": true, "city": true, "cuisine": true}

func decodeParams(q url.Values) (requestParams, error) {
	input := make(map[string]any, len(q))
	for k, vs := range q {
		if len(vs) == 0 {
			continue
		}
		if multiValued[k] {
			input[k] = vs
		} else {
			input[k] = vs[0]
		}
	}

	var p requestParams
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(input); err != nil {
		return p, fmt.Errorf("invalid query parameters: %w", err)
	}
	if p.TopN < 0 || p.CuisineTopN < 0 {
		return p, fmt.Errorf("invalid query parameters: top_n must not be negative")
	}
	return p, nil
}

// filterSet resolves p against t. Absent countries or cities select all of them.
func (p requestParams) filterSet(t *dataset.Table) filter.Set {
	s := filter.Default(t)
	if len(p.Country) > 0 {
		s.Countries = p.Country
	}
	if len(p.City) > 0 {
		s.Cities = p.City
	}
	s.Cuisines = p.Cuisine
	return s.Normalize()
}

// params overlays p onto defaults.
func (p requestParams) params(defaults aggregate.Params) aggregate.Params {
	if p.TopN > 0 {
		defaults.TopN = p.TopN
	}
	if p.CuisineTopN > 0 {
		defaults.CuisineTopN = p.CuisineTopN
	}
	return defaults
}
