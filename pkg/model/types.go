package model

import "time"

// Interval is one tracked span of time from a timewarrior export.
type Interval struct {
	Start time.Time
	End   time.Time // zero means the interval is still open
	Tags  []string
}

// Open reports whether the interval has no recorded end.
func (iv Interval) Open() bool {
	return iv.End.IsZero()
}

// Hours returns the interval duration in fractional hours. Open intervals
// are measured against now.
func (iv Interval) Hours(now time.Time) float64 {
	end := iv.End
	if end.IsZero() {
		end = now
	}
	return end.Sub(iv.Start).Hours()
}

// Entry is a counted span: a start instant and its duration in hours.
type Entry struct {
	Start time.Time
	Hours float64
}

// ExcludedTime accumulates hours per ignored tag. An interval carrying
// several ignored tags contributes its full duration to each of them.
type ExcludedTime map[string]float64

// ReportRow is one dated line of the report.
type ReportRow struct {
	Date        time.Time
	Week        int
	Projected   float64
	Actual      float64
	DayDelta    float64
	TotalActual float64
	TotalDelta  float64
	Ahead       bool
}

// WeekSummary is the subtotal for a completed (or final partial) ISO week.
// The cumulative fields reflect every date reported up to the boundary.
type WeekSummary struct {
	Week           int
	Projected      float64
	Actual         float64
	TotalProjected float64
	TotalActual    float64
	Ahead          bool
}

// DateOf returns the calendar date of t in loc, normalized to midnight UTC
// so dates compare cleanly and key maps.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
