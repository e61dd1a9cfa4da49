package aggregate

func overviewQueries() []Query {
	countWhenAny := func(rows []Row, v Value) Result {
		if len(rows) == 0 {
			return scalar(None())
		}
		return scalar(v)
	}

	return []Query{
		{
			Name: "overview.restaurants", Section: SectionOverview, Title: "Unique restaurants",
			compute: func(rows []Row, _ Params) Result {
				return countWhenAny(rows, Fold(rows, "distinct", restaurantID))
			},
		},
		{
			Name: "overview.countries", Section: SectionOverview, Title: "Unique countries",
			compute: func(rows []Row, _ Params) Result {
				return countWhenAny(rows, Fold(rows, "distinct", func(r Row) any { return r.Country }))
			},
		},
		{
			Name: "overview.cities", Section: SectionOverview, Title: "Unique cities",
			compute: func(rows []Row, _ Params) Result {
				return countWhenAny(rows, Fold(rows, "distinct", func(r Row) any { return r.City }))
			},
		},
		{
			// Nulls count as zero votes here, so any non-empty view has a total.
			Name: "overview.votes", Section: SectionOverview, Title: "Total votes",
			compute: func(rows []Row, _ Params) Result {
				total := Fold(rows, "sum", func(r Row) any { return r.Votes })
				if !total.Valid {
					total = Some(0)
				}
				return countWhenAny(rows, total)
			},
		},
		{
			Name: "overview.cuisines", Section: SectionOverview, Title: "Distinct cuisines",
			compute: func(rows []Row, _ Params) Result {
				return countWhenAny(rows, Fold(Explode(rows), "distinct", func(e Exploded) any { return e.Cuisine }))
			},
		},
	}
}
