package tracker

import "github.com/yapay-ai/hours-guardian/pkg/model"

// Re-export types from model package for convenience.
type (
	Interval     = model.Interval
	Entry        = model.Entry
	ExcludedTime = model.ExcludedTime
	ReportRow    = model.ReportRow
	WeekSummary  = model.WeekSummary
)

// DateOf wraps model.DateOf.
var DateOf = model.DateOf
