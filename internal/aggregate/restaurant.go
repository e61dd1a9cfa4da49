package aggregate

var (
	brazilianCuisine = CuisineMatch("Brazilian", "Brasileira")
	inBrazil         = CountryIn("brazil", "brasil")
	inUSA            = CountryIn("united states of america", "united states", "usa", "eua")
	japaneseCuisine  = CuisineMatch("Japanese", "Japonesa")
	bbqCuisine       = CuisineMatch("BBQ", "Barbecue", "Churrasco")
)

func restaurantQueries() []Query {
	q := func(name, title string, compute func(rows []Row, p Params) Result) Query {
		return Query{Name: "restaurant." + name, Section: SectionRestaurant, Title: title, compute: compute}
	}

	return []Query{
		q("most_votes", "Most votes", func(rows []Row, _ Params) Result {
			return lookup(TopRow(rows, Votes, Descending))
		}),
		q("highest_rating", "Highest rating", func(rows []Row, _ Params) Result {
			return lookup(TopRow(rows, Rating, Descending))
		}),
		q("highest_cost", "Highest cost for two", func(rows []Row, _ Params) Result {
			return lookup(TopRow(rows, Cost, Descending))
		}),
		q("worst_brazilian_cuisine", "Lowest rated Brazilian cuisine", func(rows []Row, _ Params) Result {
			return lookup(TopRow(Where(rows, brazilianCuisine), Rating, Ascending))
		}),
		q("best_brazilian_in_brazil", "Highest rated Brazilian cuisine in Brazil", func(rows []Row, _ Params) Result {
			return lookup(TopRow(Where(rows, And(brazilianCuisine, inBrazil)), Rating, Descending))
		}),
		q("online_vs_votes", "Mean votes with and without online delivery", func(rows []Row, _ Params) Result {
			c := CompareByFlag(rows, OnlineDelivery, Votes, "With online delivery", "Without online delivery")
			c.Verdict = c.Greater()
			return comparison(c)
		}),
		q("booking_vs_cost", "Mean cost for two with and without table booking", func(rows []Row, _ Params) Result {
			c := CompareByFlag(rows, TableBooking, Cost, "With table booking", "Without table booking")
			c.Verdict = c.Greater()
			return comparison(c)
		}),
		q("japanese_vs_bbq_usa", "Mean cost for two in the USA: Japanese vs BBQ", func(rows []Row, _ Params) Result {
			usa := Where(rows, inUSA)
			c := CompareSubsets(usa, Cost,
				Subset{Label: "Japanese (USA)", Keep: japaneseCuisine},
				Subset{Label: "BBQ (USA)", Keep: bbqCuisine},
			)
			c.Verdict = c.Greater()
			return comparison(c)
		}),
		q("top_by_votes", "Most voted restaurants", func(rows []Row, p Params) Result {
			top := TopRows(rows, Votes, Descending, p.TopN)
			out := make([]Summary, 0, len(top))
			for _, r := range top {
				out = append(out, Summarize(r))
			}
			label := Label{}
			if len(out) > 0 {
				label = LabelOf(out[0].Name)
			}
			return Result{Kind: KindRows, Label: &label, Rows: out}
		}),
	}
}
