package stats

import "droscher.com/CaffeineGargoyle/pkg/model"

// DrinkCount tallies occurrences of one drink name within a day.
type DrinkCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayTally is the per-day aggregate for one calendar window slot. Drinks
// feeds the weekly calendar (counts per name, first-seen order) while
// TotalCaffeine feeds the intake chart; the two are computed independently
// because per-drink caffeine amounts are not uniform.
type DayTally struct {
	Day           Day          `json:"day"`
	Drinks        []DrinkCount `json:"drinks"`
	TotalCaffeine int64        `json:"totalCaffeine"`
}

// AggregateByDay buckets entries into the calendar window. The result has
// the same length and order as the window; days without entries produce an
// explicit empty tally. A non-empty scopePeriodID restricts matching to that
// period, an empty one admits entries from every period.
func AggregateByDay(entries []*model.DrinkEntry, window []Day, scopePeriodID string) []DayTally {
	tallies := make([]DayTally, 0, len(window))

	for _, day := range window {
		tally := DayTally{Day: day, Drinks: []DrinkCount{}}

		for _, entry := range entries {
			if DateOf(entry.Timestamp) != day.Date {
				continue
			}

			if scopePeriodID != "" && entry.PeriodUUID.String() != scopePeriodID {
				continue
			}

			tally.TotalCaffeine += entry.CaffeineAmount
			tally.Drinks = countDrink(tally.Drinks, entry.DrinkName)
		}

		tallies = append(tallies, tally)
	}

	return tallies
}

func countDrink(drinks []DrinkCount, name string) []DrinkCount {
	for index := range drinks {
		if drinks[index].Name == name {
			drinks[index].Count++

			return drinks
		}
	}

	return append(drinks, DrinkCount{Name: name, Count: 1})
}
