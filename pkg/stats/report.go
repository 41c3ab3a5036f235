package stats

import (
	"time"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

// AllTimeLabel is the report heading used when no period is active.
const AllTimeLabel = "All Time"

// Report is the immutable snapshot handed to rendering and printing. It is
// pure composition of the other engine outputs.
type Report struct {
	PeriodName  string     `json:"periodName"`
	StartDate   Date       `json:"startDate"`
	EndDate     Date       `json:"endDate"`
	Stats       Snapshot   `json:"stats"`
	Week        []DayTally `json:"week"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

// AssembleReport composes the report for the active period. Without one the
// name falls back to the all-time sentinel and both dates degenerate to the
// current date, which is acceptable for a display-only range.
func AssembleReport(active *model.Period, snapshot Snapshot, week []DayTally, now time.Time) Report {
	report := Report{
		PeriodName:  AllTimeLabel,
		StartDate:   DateOf(now),
		EndDate:     DateOf(now),
		Stats:       snapshot,
		Week:        week,
		GeneratedAt: now,
	}

	if active != nil {
		report.PeriodName = active.Name
		report.StartDate = DateOf(active.StartDate)
		report.EndDate = DateOf(active.EndDate)
	}

	return report
}
