package tracker

import (
	"sort"
	"time"

	"github.com/yapay-ai/hours-guardian/pkg/model"
	"github.com/yapay-ai/hours-guardian/pkg/schedule"
)

// Options configure a report build.
type Options struct {
	Rules             schedule.Rules
	IgnoredTags       map[string]struct{}
	HideWeekends      bool
	WeeklySummary     bool
	SummarizeExcluded bool
}

// Boundary places a completed week's summary within the row stream.
// Week boundaries are tracked per walked date, not per emitted row: a
// week whose trailing weekend was hidden still closes before the next
// Monday's row.
type Boundary struct {
	// BeforeRow is the index of the first row of the following week.
	BeforeRow int
	Summary   model.WeekSummary
}

// Report is a fully computed report, ready for rendering.
type Report struct {
	IgnoredTags       []string // sorted, for the banner
	Rows              []model.ReportRow
	Boundaries        []Boundary
	Final             *model.WeekSummary
	Excluded          model.ExcludedTime
	WeeklySummary     bool
	SummarizeExcluded bool
}

// BuildReport folds daily totals into ordered rows, threading cumulative
// and weekly accumulator pairs through the date walk. Hidden weekend days
// contribute to no accumulator and produce no row. Returns nil when
// totals is empty: no data means no report.
func BuildReport(totals map[time.Time]float64, excluded model.ExcludedTime, opts Options) *Report {
	dates := DateRange(totals)
	if len(dates) == 0 {
		return nil
	}

	report := &Report{
		IgnoredTags:       sortedTags(opts.IgnoredTags),
		Excluded:          excluded,
		WeeklySummary:     opts.WeeklySummary,
		SummarizeExcluded: opts.SummarizeExcluded,
	}

	var (
		totalActual, totalProjected float64
		weekActual, weekProjected   float64
		lastWeek                    = -1
	)

	for _, date := range dates {
		_, week := date.ISOWeek()

		if lastWeek != -1 && week != lastWeek {
			report.Boundaries = append(report.Boundaries, Boundary{
				BeforeRow: len(report.Rows),
				Summary:   weekSummary(lastWeek, weekProjected, weekActual, totalProjected, totalActual),
			})
			weekActual, weekProjected = 0, 0
		}
		lastWeek = week

		actual := totals[date]
		projected := opts.Rules.ProjectedHours(date)

		if opts.HideWeekends && isWeekend(date) && actual == 0 {
			continue
		}

		totalActual += actual
		totalProjected += projected
		weekActual += actual
		weekProjected += projected

		totalDelta := totalActual - totalProjected
		report.Rows = append(report.Rows, model.ReportRow{
			Date:        date,
			Week:        week,
			Projected:   projected,
			Actual:      actual,
			DayDelta:    actual - projected,
			TotalActual: totalActual,
			TotalDelta:  totalDelta,
			Ahead:       totalDelta >= 0,
		})
	}

	final := weekSummary(lastWeek, weekProjected, weekActual, totalProjected, totalActual)
	report.Final = &final

	return report
}

func weekSummary(week int, weekProjected, weekActual, totalProjected, totalActual float64) model.WeekSummary {
	return model.WeekSummary{
		Week:           week,
		Projected:      weekProjected,
		Actual:         weekActual,
		TotalProjected: totalProjected,
		TotalActual:    totalActual,
		Ahead:          totalActual-totalProjected >= 0,
	}
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func sortedTags(tags map[string]struct{}) []string {
	if len(tags) == 0 {
		return nil
	}
	sorted := make([]string, 0, len(tags))
	for tag := range tags {
		sorted = append(sorted, tag)
	}
	sort.Strings(sorted)
	return sorted
}
