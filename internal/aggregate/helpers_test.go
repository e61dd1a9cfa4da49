package aggregate

import (
	"github.com/leapstack-labs/zfdash/internal/dataset"
)

func num(f float64) dataset.NullFloat { return dataset.NullFloat{Float64: f, Valid: true} }

var null = dataset.NullFloat{}

type rowOpt func(*dataset.Restaurant)

func cuisines(raw string) rowOpt {
	return func(r *dataset.Restaurant) {
		r.CuisinesRaw = dataset.NullString{String: raw, Valid: true}
		r.Cuisines = dataset.SplitCuisines(raw)
		r.CuisinesLower = dataset.Lower(raw)
	}
}

func votes(v dataset.NullFloat) rowOpt  { return func(r *dataset.Restaurant) { r.Votes = v } }
func rating(v dataset.NullFloat) rowOpt { return func(r *dataset.Restaurant) { r.AggregateRating = v } }
func cost(v dataset.NullFloat) rowOpt   { return func(r *dataset.Restaurant) { r.AverageCostForTwo = v } }
func price(n int64) rowOpt {
	return func(r *dataset.Restaurant) { r.PriceRange = dataset.NullInt{Int64: n, Valid: true} }
}
func online(r *dataset.Restaurant)     { r.HasOnlineDelivery = true }
func delivering(r *dataset.Restaurant) { r.IsDeliveringNow = true }
func booking(r *dataset.Restaurant)    { r.HasTableBooking = true }

func restaurant(id int64, name, country, city string, opts ...rowOpt) dataset.Restaurant {
	r := dataset.Restaurant{
		ID:      dataset.NullInt{Int64: id, Valid: true},
		Name:    name,
		Country: country,
		City:    city,
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}

func rowsOf(rs ...dataset.Restaurant) []Row {
	return dataset.NewTable(rs).Rows()
}

func sampleTable() *dataset.Table {
	return dataset.NewTable([]dataset.Restaurant{
		restaurant(1, "Churrascaria Gaúcha", "Brazil", "Rio de Janeiro",
			cuisines("Brazilian, BBQ"), votes(num(120)), rating(num(4.5)), cost(num(250)), price(4), booking),
		restaurant(2, "Boteco", "Brazil", "São Paulo",
			cuisines("Brasileira, Bar Food"), votes(num(40)), rating(num(3.1)), cost(num(80)), price(2), online, delivering),
		restaurant(3, "Sushi Place", "United States of America", "Houston",
			cuisines("Japanese, Sushi"), votes(num(300)), rating(num(4.2)), cost(num(60)), price(3), online),
		restaurant(4, "Smokehouse", "United States of America", "Houston",
			cuisines("BBQ, American"), votes(num(90)), rating(num(2.1)), cost(num(40)), price(2), booking),
		restaurant(5, "Trattoria", "Italy", "Rome",
			cuisines("Italian, Pizza"), votes(null), rating(num(4.8)), cost(num(70)), price(4), online, delivering),
		restaurant(6, "Pan Diner", "United States of America", "Austin",
			cuisines("Pan-American, Italian"), votes(num(10)), rating(num(2.4)), cost(null), price(1)),
	})
}
