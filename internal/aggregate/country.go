package aggregate

func countryQueries() []Query {
	q := func(name, title string, compute func(rows []Row) Series) Query {
		return Query{
			Name: "country." + name, Section: SectionCountry, Title: title,
			compute: func(rows []Row, p Params) Result { return ranking(compute(rows), p.TopN) },
		}
	}
	cities := func(r Row) string { return r.City }

	return []Query{
		q("most_cities", "Most cities", func(rows []Row) Series {
			return CountDistinct(rows, ByCountry, cities)
		}),
		q("most_restaurants", "Most restaurants", func(rows []Row) Series {
			return CountDistinctIDs(rows, ByCountry)
		}),
		q("most_price_range_4", "Most restaurants with price range 4", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, PriceRange(4)), ByCountry)
		}),
		q("most_cuisines", "Most distinct cuisines", func(rows []Row) Series {
			return CountCuisinesBy(Explode(rows), ByCountry)
		}),
		q("most_votes", "Most votes", func(rows []Row) Series {
			return SumBy(rows, ByCountry, Votes)
		}),
		q("most_delivering_now", "Most restaurants delivering now", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, DeliveringNow), ByCountry)
		}),
		q("most_table_booking", "Most restaurants taking reservations", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, TableBooking), ByCountry)
		}),
		q("highest_mean_votes", "Highest mean votes per restaurant", func(rows []Row) Series {
			return MeanBy(rows, ByCountry, Votes, Descending)
		}),
		q("highest_mean_rating", "Highest mean rating", func(rows []Row) Series {
			return MeanBy(rows, ByCountry, Rating, Descending)
		}),
		q("lowest_mean_rating", "Lowest mean rating", func(rows []Row) Series {
			return MeanBy(rows, ByCountry, Rating, Ascending)
		}),
		q("mean_cost_for_two", "Mean cost for two", func(rows []Row) Series {
			return MeanBy(rows, ByCountry, Cost, Descending)
		}),
	}
}
