package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yapay-ai/hours-guardian/pkg/tracker"
)

// tagColor is the 256-color index used for excluded tag names.
const tagColor = "69"

// Reporter renders a computed report as fixed-width text.
type Reporter struct {
	writer   io.Writer
	tagStyle lipgloss.Style
}

// NewReporter creates a reporter writing to w. The profile decides whether
// tag names carry color sequences; see Profile.
func NewReporter(w io.Writer, profile termenv.Profile) *Reporter {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return &Reporter{
		writer:   w,
		tagStyle: renderer.NewStyle().Foreground(lipgloss.Color(tagColor)),
	}
}

// Handle writes the formatted report. A nil report writes nothing.
func (r *Reporter) Handle(report *tracker.Report) error {
	if report == nil {
		return nil
	}

	var b strings.Builder

	if len(report.IgnoredTags) > 0 {
		styled := make([]string, len(report.IgnoredTags))
		for i, tag := range report.IgnoredTags {
			styled[i] = r.tagStyle.Render(tag)
		}
		fmt.Fprintf(&b, "Excluded tags: %s\n\n", strings.Join(styled, ", "))
	}

	header := fmt.Sprintf("%-18s %-10s %-10s %-10s %-10s %-10s",
		"Date", "Goal", "Worked", "Day +/-", "Total", "Status")
	rule := strings.Repeat("-", len(header))
	b.WriteString(header + "\n")
	b.WriteString(rule + "\n")

	next := 0
	for i, row := range report.Rows {
		for next < len(report.Boundaries) && report.Boundaries[next].BeforeRow == i {
			r.writeBoundary(&b, report.Boundaries[next].Summary, rule, report.WeeklySummary)
			next++
		}
		r.writeRow(&b, row)
	}

	if report.WeeklySummary && report.Final != nil {
		r.writeWeekSummary(&b, *report.Final, rule)
	}

	if report.SummarizeExcluded && len(report.Excluded) > 0 {
		r.writeExcluded(&b, report.Excluded)
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}

// writeBoundary closes out a week within the row stream. The separator
// rule prints at every week change; the summary only when enabled.
func (r *Reporter) writeBoundary(b *strings.Builder, summary tracker.WeekSummary, rule string, weekly bool) {
	if weekly {
		r.writeWeekSummary(b, summary, rule)
	}
	b.WriteString(rule + "\n")
}

func (r *Reporter) writeRow(b *strings.Builder, row tracker.ReportRow) {
	indicator := "▼"
	if row.Ahead {
		indicator = "▲"
	}

	label := fmt.Sprintf("W%02d %s", row.Week, row.Date.Format("Jan Mon 02"))
	fmt.Fprintf(b, "%-18s %-10s %-10s %-10s %-10s %s %s\n",
		label,
		FormatHours(row.Projected, false),
		FormatHours(row.Actual, false),
		FormatHours(row.DayDelta, true),
		FormatHours(row.TotalActual, false),
		FormatHours(row.TotalDelta, true),
		indicator)
}

func (r *Reporter) writeWeekSummary(b *strings.Builder, summary tracker.WeekSummary, rule string) {
	status := "Behind"
	if summary.Ahead {
		status = "Ahead of"
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "Week %02d Summary:   %-10s %-10s (%s goal by %s)\n",
		summary.Week,
		FormatHours(summary.Projected, false),
		FormatHours(summary.Actual, false),
		status,
		FormatHours(summary.TotalActual-summary.TotalProjected, false))
}

func (r *Reporter) writeExcluded(b *strings.Builder, excluded tracker.ExcludedTime) {
	tags := make([]string, 0, len(excluded))
	for tag := range excluded {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	b.WriteString("\nExcluded Time Summary:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, tag := range tags {
		// The pad width counts the style's escape runes too.
		fmt.Fprintf(b, "%-27s %s\n", r.tagStyle.Render(tag), FormatHours(excluded[tag], false))
	}
}
