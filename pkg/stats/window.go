package stats

import (
	"time"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

// WindowDays is the fixed length of the weekly display window.
const WindowDays = 5

// Day is one slot of the calendar window. Labels always name the true
// weekday of the date; the window is not necessarily Monday through Friday.
type Day struct {
	Label    string `json:"label"`    // three-letter form, e.g. "Wed"
	FullName string `json:"fullName"` // e.g. "Wednesday"
	Date     Date   `json:"date"`
}

// ComputeWindow returns the 5 consecutive days shown in weekly views. With
// an active period the window is anchored to the period's start date; without
// one it is anchored to the Monday of the week containing today.
func ComputeWindow(active *model.Period, today time.Time) []Day {
	var anchor Date
	if active != nil {
		anchor = DateOf(active.StartDate)
	} else {
		anchor = mondayOf(DateOf(today))
	}

	window := make([]Day, 0, WindowDays)

	for offset := 0; offset < WindowDays; offset++ {
		date := anchor.AddDays(offset)
		weekday := date.Weekday().String()
		window = append(window, Day{
			Label:    weekday[:3],
			FullName: weekday,
			Date:     date,
		})
	}

	return window
}

// mondayOf shifts a date back to the Monday of its ISO week.
func mondayOf(d Date) Date {
	// time.Weekday counts from Sunday == 0.
	offset := (int(d.Weekday()) + 6) % 7

	return d.AddDays(-offset)
}
