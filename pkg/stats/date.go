// Package stats implements the derived-statistics and period-scoping engine.
// Every function is pure: it takes fresh snapshots of the period and entry
// collections and recomputes from scratch. Nothing in this package touches
// storage or holds state between calls.
package stats

import (
	"fmt"
	"time"
)

// Date is a calendar date held as explicit year/month/day components.
// Day-granularity comparisons must go through this type, never through
// time.Time instants, so that timezone offsets cannot shift a value to the
// neighbouring day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf reduces a time.Time to its calendar date, reading the components
// as stored without converting locations.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.Time().AddDate(0, 0, days))
}

// Time returns the date at UTC midnight, for display formatting only.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}

	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date %q", string(data))
	}

	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
