package aggregate

import "github.com/leapstack-labs/zfdash/internal/dataset"

// Kind tells a display layer how to present a result.
type Kind string

// Result kinds.
const (
	KindScalar     Kind = "scalar"
	KindLabel      Kind = "label"
	KindRanking    Kind = "ranking"
	KindComparison Kind = "comparison"
	KindRows       Kind = "rows"
	KindExtremes   Kind = "extremes"
)

// Extremes names the highest and lowest rated restaurant of a cuisine.
type Extremes struct {
	Highest Label `json:"highest" yaml:"highest"`
	Lowest  Label `json:"lowest" yaml:"lowest"`
}

// Summary is the display form of a single restaurant.
type Summary struct {
	Name     string   `json:"restaurant_name" yaml:"restaurant_name"`
	Country  string   `json:"country" yaml:"country"`
	City     string   `json:"city" yaml:"city"`
	Cuisines []string `json:"cuisines" yaml:"cuisines"`
	Votes    Value    `json:"votes" yaml:"votes"`
	Rating   Value    `json:"aggregate_rating" yaml:"aggregate_rating"`
	Cost     Value    `json:"average_cost_for_two" yaml:"average_cost_for_two"`
	Currency string   `json:"currency" yaml:"currency"`
}

// Summarize converts a row into its display form.
func Summarize(r Row) Summary {
	return Summary{
		Name:     r.Name,
		Country:  r.Country,
		City:     r.City,
		Cuisines: r.Cuisines,
		Votes:    fromNull(r.Votes),
		Rating:   fromNull(r.AggregateRating),
		Cost:     fromNull(r.AverageCostForTwo),
		Currency: r.Currency,
	}
}

func fromNull(n dataset.NullFloat) Value {
	return Value{Number: n.Float64, Valid: n.Valid}
}

// Result is the outcome of one named query. Only the fields matching Kind are set.
type Result struct {
	Name       string      `json:"name" yaml:"name"`
	Section    Section     `json:"section" yaml:"section"`
	Title      string      `json:"title" yaml:"title"`
	Kind       Kind        `json:"kind" yaml:"kind"`
	Scalar     *Value      `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Label      *Label      `json:"label,omitempty" yaml:"label,omitempty"`
	Series     Series      `json:"series,omitempty" yaml:"series,omitempty"`
	Comparison *Comparison `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Extremes   *Extremes   `json:"extremes,omitempty" yaml:"extremes,omitempty"`
	Rows       []Summary   `json:"rows,omitempty" yaml:"rows,omitempty"`
}

func scalar(v Value) Result {
	return Result{Kind: KindScalar, Scalar: &v}
}

func ranking(s Series, topN int) Result {
	label := s.TopLabel()
	return Result{Kind: KindRanking, Label: &label, Series: s.Top(topN)}
}

func lookup(r Row, ok bool) Result {
	if !ok {
		return Result{Kind: KindLabel, Label: &Label{}}
	}
	label := LabelOf(r.Name)
	return Result{Kind: KindLabel, Label: &label, Rows: []Summary{Summarize(r)}}
}

func comparison(c Comparison) Result {
	return Result{Kind: KindComparison, Comparison: &c}
}
