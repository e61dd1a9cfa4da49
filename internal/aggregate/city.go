package aggregate

func cityQueries() []Query {
	q := func(name, title string, compute func(rows []Row) Series) Query {
		return Query{
			Name: "city." + name, Section: SectionCity, Title: title,
			compute: func(rows []Row, p Params) Result { return ranking(compute(rows), p.TopN) },
		}
	}

	return []Query{
		q("most_restaurants", "Most restaurants", func(rows []Row) Series {
			return CountDistinctIDs(rows, ByCity)
		}),
		q("most_rating_above_4", "Most restaurants rated above 4", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, RatingAbove(4)), ByCity)
		}),
		q("most_rating_below_2_5", "Most restaurants rated below 2.5", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, RatingBelow(2.5)), ByCity)
		}),
		q("highest_mean_cost", "Highest mean cost for two", func(rows []Row) Series {
			return MeanBy(rows, ByCity, Cost, Descending)
		}),
		q("most_cuisines", "Most distinct cuisines", func(rows []Row) Series {
			return CountCuisinesBy(Explode(rows), ByCity)
		}),
		q("most_table_booking", "Most restaurants taking reservations", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, TableBooking), ByCity)
		}),
		q("most_delivering_now", "Most restaurants delivering now", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, DeliveringNow), ByCity)
		}),
		q("most_online_delivery", "Most restaurants with online delivery", func(rows []Row) Series {
			return CountDistinctIDs(Where(rows, OnlineDelivery), ByCity)
		}),
	}
}
