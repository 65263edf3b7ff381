package tracker

import (
	"time"

	"github.com/yapay-ai/hours-guardian/pkg/model"
)

// Split separates intervals into counted entries and per-tag excluded
// time. An interval whose tag set intersects ignored never reaches the
// counted stream; its full duration accrues to every matching tag, so an
// interval with two ignored tags is visible under both.
func Split(intervals []model.Interval, ignored map[string]struct{}, now time.Time) ([]model.Entry, model.ExcludedTime) {
	entries := make([]model.Entry, 0, len(intervals))
	excluded := make(model.ExcludedTime)

	for _, iv := range intervals {
		hours := iv.Hours(now)

		matched := false
		for _, tag := range iv.Tags {
			if _, ok := ignored[tag]; ok {
				excluded[tag] += hours
				matched = true
			}
		}
		if matched {
			continue
		}

		entries = append(entries, model.Entry{Start: iv.Start, Hours: hours})
	}

	return entries, excluded
}

// BucketByDate sums entry hours per calendar date in loc.
func BucketByDate(entries []model.Entry, loc *time.Location) map[time.Time]float64 {
	totals := make(map[time.Time]float64)
	for _, e := range entries {
		totals[model.DateOf(e.Start, loc)] += e.Hours
	}
	return totals
}

// DateRange returns every date from the earliest to the latest key of
// totals, inclusive and gap free. Dates with no tracked time still appear
// so the report shows zero-actual days. Empty totals yield nil.
func DateRange(totals map[time.Time]float64) []time.Time {
	if len(totals) == 0 {
		return nil
	}

	var first, last time.Time
	for date := range totals {
		if first.IsZero() || date.Before(first) {
			first = date
		}
		if date.After(last) {
			last = date
		}
	}

	dates := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
