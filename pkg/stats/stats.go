package stats

import (
	"github.com/google/uuid"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

type ScopeKind int

const (
	// ScopeKindPeriod selects entries belonging to a single period.
	ScopeKindPeriod ScopeKind = iota
	// ScopeKindAllVisible selects entries whose owning period exists and is
	// not hidden. Entries orphaned by period deletion are excluded.
	ScopeKindAllVisible
	// ScopeKindYear selects entries by calendar year of their timestamp,
	// independent of period.
	ScopeKindYear
)

// Scope is the subset-selection rule governing a statistics computation.
type Scope struct {
	Kind     ScopeKind
	PeriodID string
	Periods  []*model.Period
	Year     int
}

func PeriodScope(periodID string) Scope {
	return Scope{Kind: ScopeKindPeriod, PeriodID: periodID}
}

func AllVisibleScope(periods []*model.Period) Scope {
	return Scope{Kind: ScopeKindAllVisible, Periods: periods}
}

func YearScope(year int) Scope {
	return Scope{Kind: ScopeKindYear, Year: year}
}

// Snapshot is the aggregate result for one scope. A scope that matches
// nothing (including an unknown period id) yields the zero Snapshot rather
// than an error; averages are defined as 0 when UniqueDays is 0.
type Snapshot struct {
	TotalCaffeine     int64   `json:"totalCaffeine"`
	TotalDrinks       int     `json:"totalDrinks"`
	UniqueDays        int     `json:"uniqueDays"`
	AvgDrinksPerDay   float64 `json:"avgDrinksPerDay"`
	AvgCaffeinePerDay float64 `json:"avgCaffeinePerDay"`
}

// ComputeStats totals the entries selected by scope: caffeine sum, drink
// count, distinct calendar days, and the per-day averages derived from them.
func ComputeStats(entries []*model.DrinkEntry, scope Scope) Snapshot {
	var snapshot Snapshot

	days := make(map[Date]struct{})
	matches := scope.matcher()

	for _, entry := range entries {
		if !matches(entry) {
			continue
		}

		snapshot.TotalCaffeine += entry.CaffeineAmount
		snapshot.TotalDrinks++
		days[DateOf(entry.Timestamp)] = struct{}{}
	}

	snapshot.UniqueDays = len(days)

	if snapshot.UniqueDays > 0 {
		snapshot.AvgDrinksPerDay = float64(snapshot.TotalDrinks) / float64(snapshot.UniqueDays)
		snapshot.AvgCaffeinePerDay = float64(snapshot.TotalCaffeine) / float64(snapshot.UniqueDays)
	}

	return snapshot
}

func (s Scope) matcher() func(*model.DrinkEntry) bool {
	switch s.Kind {
	case ScopeKindPeriod:
		return func(entry *model.DrinkEntry) bool {
			return entry.PeriodUUID.String() == s.PeriodID
		}
	case ScopeKindAllVisible:
		visible := make(map[uuid.UUID]bool, len(s.Periods))

		for _, period := range s.Periods {
			if !period.Hidden {
				visible[period.UUID] = true
			}
		}

		return func(entry *model.DrinkEntry) bool {
			return visible[entry.PeriodUUID]
		}
	case ScopeKindYear:
		return func(entry *model.DrinkEntry) bool {
			return entry.Timestamp.Year() == s.Year
		}
	}

	return func(*model.DrinkEntry) bool { return false }
}
