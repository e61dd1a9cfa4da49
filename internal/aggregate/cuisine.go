package aggregate

// CuisineTarget is a cuisine with a dedicated top/bottom lookup.
type CuisineTarget struct {
	Key   string
	Names []string
}

// CuisineTargets returns the cuisines looked up by the cuisine section.
func CuisineTargets() []CuisineTarget {
	return []CuisineTarget{
		{Key: "italian", Names: []string{"Italian", "Italiana"}},
		{Key: "american", Names: []string{"American", "Americana"}},
		{Key: "arabian", Names: []string{"Arabian", "Árabe"}},
		{Key: "japanese", Names: []string{"Japanese", "Japonesa"}},
		{Key: "home-made", Names: []string{"Home-made", "Caseira"}},
	}
}

// TopBottom looks up the highest and lowest rated restaurant serving one of names.
func TopBottom(rows []Row, names ...string) Result {
	top, bottom, ok := CuisineTopBottom(Explode(rows), names...)
	ext := Extremes{}
	if ok {
		ext.Highest = LabelOf(top.Name)
		ext.Lowest = LabelOf(bottom.Name)
	}
	return Result{Kind: KindExtremes, Extremes: &ext}
}

func cuisineQueries() []Query {
	var qs []Query
	for _, target := range CuisineTargets() {
		names := target.Names
		qs = append(qs, Query{
			Name:    "cuisine.top_bottom." + target.Key,
			Section: SectionCuisine,
			Title:   names[0] + ": highest and lowest rated",
			compute: func(rows []Row, _ Params) Result { return TopBottom(rows, names...) },
		})
	}

	q := func(name, title string, compute func(exploded []Exploded) Series) Query {
		return Query{
			Name: "cuisine." + name, Section: SectionCuisine, Title: title,
			compute: func(rows []Row, p Params) Result {
				return ranking(compute(Explode(rows)), p.CuisineTopN)
			},
		}
	}
	return append(qs,
		q("highest_mean_cost", "Highest mean cost for two", func(exploded []Exploded) Series {
			return MeanByCuisine(exploded, Cost)
		}),
		q("highest_mean_rating", "Highest mean rating", func(exploded []Exploded) Series {
			return MeanByCuisine(exploded, Rating)
		}),
		q("most_online_and_delivering", "Most restaurants with online delivery delivering now", func(exploded []Exploded) Series {
			return CountDistinctIDsByCuisine(WhereExploded(exploded, And(OnlineDelivery, DeliveringNow)))
		}),
	)
}
