package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapay-ai/hours-guardian/pkg/schedule"
	"github.com/yapay-ai/hours-guardian/pkg/tracker"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildReport_SingleDay(t *testing.T) {
	totals := map[time.Time]float64{day(2024, 1, 1): 8.0}

	report := tracker.BuildReport(totals, nil, tracker.Options{})
	require.NotNil(t, report)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, 1, row.Week)
	assert.Equal(t, 0.0, row.Projected)
	assert.Equal(t, 8.0, row.Actual)
	assert.Equal(t, 8.0, row.DayDelta)
	assert.Equal(t, 8.0, row.TotalActual)
	assert.Equal(t, 8.0, row.TotalDelta)
	assert.True(t, row.Ahead)

	assert.Empty(t, report.Boundaries)
	require.NotNil(t, report.Final)
	assert.Equal(t, 1, report.Final.Week)
	assert.Equal(t, 8.0, report.Final.Actual)
}

func TestBuildReport_GoalMet(t *testing.T) {
	totals := map[time.Time]float64{day(2024, 1, 1): 8.0}
	opts := tracker.Options{
		Rules: schedule.Rules{
			Exclusions:  map[string]float64{"monday": 8.0},
			HoursPerDay: 8.0,
		},
	}

	report := tracker.BuildReport(totals, nil, opts)
	require.NotNil(t, report)

	row := report.Rows[0]
	assert.Equal(t, 8.0, row.Projected)
	assert.Equal(t, 0.0, row.DayDelta)
	assert.Equal(t, 0.0, row.TotalDelta)
	assert.True(t, row.Ahead, "meeting the goal exactly counts as ahead")
}

func TestBuildReport_Empty(t *testing.T) {
	assert.Nil(t, tracker.BuildReport(nil, nil, tracker.Options{}))
	assert.Nil(t, tracker.BuildReport(map[time.Time]float64{}, nil, tracker.Options{}))
}

func TestBuildReport_CumulativeInvariant(t *testing.T) {
	totals := map[time.Time]float64{
		day(2024, 1, 1): 6.0,
		day(2024, 1, 2): 9.0,
		day(2024, 1, 4): 7.5,
	}
	opts := tracker.Options{
		Rules: schedule.Rules{
			Exclusions: map[string]float64{
				"monday": 8.0, "tuesday": 8.0, "wednesday": 8.0, "thursday": 8.0,
			},
			HoursPerDay: 8.0,
		},
	}

	report := tracker.BuildReport(totals, nil, opts)
	require.NotNil(t, report)
	require.Len(t, report.Rows, 4, "the gap day still gets a row")

	var sumActual, sumProjected float64
	for _, row := range report.Rows {
		sumActual += row.Actual
		sumProjected += row.Projected
		assert.Equal(t, sumActual, row.TotalActual)
		assert.Equal(t, sumActual-sumProjected, row.TotalDelta)
		assert.Equal(t, row.TotalDelta >= 0, row.Ahead)
	}

	// The Jan 3 gap day reports zero actual against a full goal.
	gap := report.Rows[2]
	assert.Equal(t, 0.0, gap.Actual)
	assert.Equal(t, 8.0, gap.Projected)
	assert.Equal(t, -8.0, gap.DayDelta)
}

func TestBuildReport_WeekBoundary(t *testing.T) {
	// 2024-01-05 is Friday (week 1), 2024-01-08 is Monday (week 2).
	totals := map[time.Time]float64{
		day(2024, 1, 5): 4.0,
		day(2024, 1, 8): 5.0,
	}

	report := tracker.BuildReport(totals, nil, tracker.Options{WeeklySummary: true})
	require.NotNil(t, report)
	require.Len(t, report.Rows, 4, "Friday through Monday inclusive")

	require.Len(t, report.Boundaries, 1)
	boundary := report.Boundaries[0]
	assert.Equal(t, 3, boundary.BeforeRow, "summary precedes Monday's row")
	assert.Equal(t, 1, boundary.Summary.Week)
	assert.Equal(t, 4.0, boundary.Summary.Actual)
	assert.Equal(t, 4.0, boundary.Summary.TotalActual)

	require.NotNil(t, report.Final)
	assert.Equal(t, 2, report.Final.Week)
	assert.Equal(t, 5.0, report.Final.Actual, "weekly accumulators reset at the boundary")
	assert.Equal(t, 9.0, report.Final.TotalActual)
}

func TestBuildReport_HideWeekends(t *testing.T) {
	// Saturday and Sunday carry no work; Friday and Monday do.
	totals := map[time.Time]float64{
		day(2024, 1, 5): 8.0,
		day(2024, 1, 8): 8.0,
	}

	report := tracker.BuildReport(totals, nil, tracker.Options{HideWeekends: true})
	require.NotNil(t, report)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, day(2024, 1, 5), report.Rows[0].Date)
	assert.Equal(t, day(2024, 1, 8), report.Rows[1].Date)
}

func TestBuildReport_WeekendWithWorkStaysVisible(t *testing.T) {
	totals := map[time.Time]float64{day(2024, 1, 6): 3.0}

	report := tracker.BuildReport(totals, nil, tracker.Options{HideWeekends: true})
	require.NotNil(t, report)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 3.0, report.Rows[0].Actual)
	assert.Equal(t, 0.0, report.Rows[0].Projected)
}

func TestBuildReport_BoundaryAfterHiddenWeekend(t *testing.T) {
	// The tracked range opens on a workless Saturday; with weekends hidden
	// the first week contributes no rows, yet its summary still precedes
	// Monday's row.
	totals := map[time.Time]float64{
		day(2024, 1, 6): 0.0,
		day(2024, 1, 8): 5.0,
	}

	report := tracker.BuildReport(totals, nil, tracker.Options{HideWeekends: true, WeeklySummary: true})
	require.NotNil(t, report)

	require.Len(t, report.Rows, 1)
	require.Len(t, report.Boundaries, 1)
	assert.Equal(t, 0, report.Boundaries[0].BeforeRow)
	assert.Equal(t, 1, report.Boundaries[0].Summary.Week)
	assert.Equal(t, 0.0, report.Boundaries[0].Summary.Actual)
}

func TestBuildReport_YearEndBoundary(t *testing.T) {
	// 2024-12-27 is a Friday in ISO week 52; 2024-12-30 is a Monday that
	// already belongs to week 1 of 2025.
	totals := map[time.Time]float64{
		day(2024, 12, 27): 2.0,
		day(2024, 12, 30): 3.0,
	}

	report := tracker.BuildReport(totals, nil, tracker.Options{})
	require.NotNil(t, report)

	require.Len(t, report.Boundaries, 1)
	assert.Equal(t, 52, report.Boundaries[0].Summary.Week)
	assert.Equal(t, 1, report.Rows[len(report.Rows)-1].Week)
}

func TestBuildReport_HolidayProjection(t *testing.T) {
	// 2024-07-04 is a Thursday holiday with a 10 hour target: 2 remain.
	totals := map[time.Time]float64{day(2024, 7, 4): 2.0}
	opts := tracker.Options{
		Rules: schedule.Rules{
			Exclusions:  map[string]float64{"thursday": 10.0},
			Holidays:    map[string]struct{}{"2024-07-04": {}},
			HoursPerDay: 10.0,
		},
	}

	report := tracker.BuildReport(totals, nil, opts)
	require.NotNil(t, report)

	row := report.Rows[0]
	assert.Equal(t, 2.0, row.Projected)
	assert.Equal(t, 0.0, row.DayDelta)
	assert.True(t, row.Ahead)
}

func TestBuildReport_SortsIgnoredTags(t *testing.T) {
	totals := map[time.Time]float64{day(2024, 1, 1): 1.0}
	opts := tracker.Options{
		IgnoredTags: map[string]struct{}{"lunch": {}, "Break": {}, "admin": {}},
	}

	report := tracker.BuildReport(totals, nil, opts)
	require.NotNil(t, report)
	assert.Equal(t, []string{"Break", "admin", "lunch"}, report.IgnoredTags)
}

func TestBuildReport_CarriesExcludedTime(t *testing.T) {
	totals := map[time.Time]float64{day(2024, 1, 1): 1.0}
	excluded := tracker.ExcludedTime{"Lunch": 2.5}

	report := tracker.BuildReport(totals, excluded, tracker.Options{SummarizeExcluded: true})
	require.NotNil(t, report)
	assert.True(t, report.SummarizeExcluded)
	assert.Equal(t, excluded, report.Excluded)
}
