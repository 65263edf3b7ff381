package timew

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	exclusionPattern = regexp.MustCompile(`^exclusions\.(\w+):\s*<(\d+:\d+)\s*>(\d+:\d+)`)
	holidayPattern   = regexp.MustCompile(`^holidays\.US\.(\d{4}-\d{2}-\d{2}):\s*(.+)`)
)

// Header holds the configuration lines preceding the interval payload.
// Directives are free text; anything unrecognized is ignored.
type Header []string

// Settings is the typed view of every directive the report consumes.
type Settings struct {
	IgnoreTags        []string
	Exclusions        map[string]float64
	Holidays          map[string]struct{}
	HideWeekends      bool
	WeeklySummary     bool
	SummarizeExcluded bool
	HoursPerDay       float64 // 0 when the export declares none
}

// Lookup returns the trimmed value of the first line starting with "key:".
func (h Header) Lookup(key string) (string, bool) {
	prefix := key + ":"
	for _, line := range h {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// IgnoreTags returns the space-separated projected.ignore_tags list.
func (h Header) IgnoreTags() []string {
	raw, ok := h.Lookup("projected.ignore_tags")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// Exclusions maps lowercase weekday names to goal hours derived from
// "exclusions.<day>: <HH:MM >HH:MM" work windows. The window's length is
// the expected working time for that weekday.
func (h Header) Exclusions() map[string]float64 {
	exclusions := make(map[string]float64)
	for _, line := range h {
		m := exclusionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start := minuteOfDay(m[2])
		end := minuteOfDay(m[3])
		exclusions[strings.ToLower(m[1])] = float64(end-start) / 60.0
	}
	return exclusions
}

// Holidays collects "holidays.US.<date>: <name>" dates as YYYY-MM-DD keys.
// The name is required by the directive but not retained.
func (h Header) Holidays() map[string]struct{} {
	holidays := make(map[string]struct{})
	for _, line := range h {
		if m := holidayPattern.FindStringSubmatch(line); m != nil {
			holidays[m[1]] = struct{}{}
		}
	}
	return holidays
}

// HoursPerDay returns the totals.hours_per_day directive. ok is false when
// the directive is absent, unparsable, or not positive.
func (h Header) HoursPerDay() (float64, bool) {
	raw, ok := h.Lookup("totals.hours_per_day")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Settings assembles every recognized directive, defaulting anything
// absent or malformed. It never fails.
func (h Header) Settings() Settings {
	s := Settings{
		IgnoreTags: h.IgnoreTags(),
		Exclusions: h.Exclusions(),
		Holidays:   h.Holidays(),
	}

	if v, ok := h.Lookup("projected.show_weekends"); ok && v == "no" {
		s.HideWeekends = true
	}
	if v, ok := h.Lookup("projected.weekly_summary"); ok && v == "yes" {
		s.WeeklySummary = true
	}
	if v, ok := h.Lookup("projected.summarize_excluded"); ok && v == "yes" {
		s.SummarizeExcluded = true
	}
	if v, ok := h.HoursPerDay(); ok {
		s.HoursPerDay = v
	}

	return s
}

// minuteOfDay converts an HH:MM token (pre-validated by the directive
// pattern) to minutes since midnight.
func minuteOfDay(s string) int {
	hh, mm, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}
