package schedule

import (
	"math"
	"strings"
	"time"
)

// DefaultHoursPerDay is the daily target applied when neither the export
// nor the configuration declares one.
const DefaultHoursPerDay = 8.0

// Rules determine the expected work hours for any date.
type Rules struct {
	// Exclusions maps lowercase weekday names to that weekday's goal hours.
	Exclusions map[string]float64
	// Holidays holds zero-goal dates keyed as YYYY-MM-DD.
	Holidays map[string]struct{}
	// HoursPerDay is the daily target consumed by the holiday adjustment.
	HoursPerDay float64
}

// ProjectedHours returns the goal hours for date. The holiday rule shadows
// the weekend rule, which shadows the weekday template.
//
// A Friday holiday is fully off. A holiday on any other weekday only
// offsets the standard 8-hour baseline, so a larger daily target keeps
// its surplus.
func (r Rules) ProjectedHours(date time.Time) float64 {
	weekday := date.Weekday()

	if _, ok := r.Holidays[date.Format("2006-01-02")]; ok {
		if weekday == time.Friday {
			return 0
		}
		return math.Max(0, r.HoursPerDay-8.0)
	}

	if weekday == time.Saturday || weekday == time.Sunday {
		return 0
	}

	return r.Exclusions[strings.ToLower(weekday.String())]
}

// AddHolidays unions more YYYY-MM-DD dates into the holiday set.
func (r *Rules) AddHolidays(dates ...string) {
	if r.Holidays == nil {
		r.Holidays = make(map[string]struct{}, len(dates))
	}
	for _, d := range dates {
		r.Holidays[d] = struct{}{}
	}
}
