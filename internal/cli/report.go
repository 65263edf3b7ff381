package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/hours-guardian/internal/config"
	"github.com/yapay-ai/hours-guardian/pkg/schedule"
	"github.com/yapay-ai/hours-guardian/pkg/terminal"
	"github.com/yapay-ai/hours-guardian/pkg/timew"
	"github.com/yapay-ai/hours-guardian/pkg/tracker"
	"golang.org/x/term"
)

var errInteractiveStdin = errors.New(strings.Join([]string{
	"standard input is a terminal, expected a timewarrior export",
	"usage: timew export | hours-guardian [--ignore TAG]",
}, "\n"))

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errInteractiveStdin
	}

	export, err := timew.ReadExport(cmd.InOrStdin())
	if err != nil {
		return err
	}

	intervals, err := export.Intervals()
	if err != nil {
		return err
	}

	settings := export.Header.Settings()
	logger.Debug("export parsed",
		"header_lines", len(export.Header),
		"intervals", len(intervals))

	flagTags, _ := cmd.Flags().GetStringSlice("ignore")
	ignored := tagSet(cfg.Report.IgnoreTags, settings.IgnoreTags, flagTags)

	rules, err := buildRules(cfg, settings, logger)
	if err != nil {
		return err
	}

	clock := tracker.SystemClock()
	entries, excluded := tracker.Split(intervals, ignored, clock.Now)
	totals := tracker.BucketByDate(entries, clock.Local)

	report := tracker.BuildReport(totals, excluded, tracker.Options{
		Rules:             rules,
		IgnoredTags:       ignored,
		HideWeekends:      settings.HideWeekends,
		WeeklySummary:     settings.WeeklySummary,
		SummarizeExcluded: settings.SummarizeExcluded,
	})
	if report == nil {
		logger.Debug("no tracked time to report")
		return nil
	}

	colorMode := cfg.Report.Color
	if flag, _ := cmd.Flags().GetString("color"); flag != "" {
		colorMode = flag
	}

	out := cmd.OutOrStdout()
	reporter := terminal.NewReporter(out, terminal.Profile(out, colorMode))
	return reporter.Handle(report)
}

// buildRules merges the export's own directives with the configured
// calendars. An hours-per-day directive in the export wins over the
// configured fallback.
func buildRules(cfg *config.Config, settings timew.Settings, logger *slog.Logger) (schedule.Rules, error) {
	rules := schedule.Rules{
		Exclusions:  settings.Exclusions,
		Holidays:    settings.Holidays,
		HoursPerDay: settings.HoursPerDay,
	}
	if rules.HoursPerDay == 0 {
		rules.HoursPerDay = cfg.Report.HoursPerDay
	}

	dates, err := schedule.LoadCalendarDir(cfg.Calendar.Dir)
	if err != nil {
		return schedule.Rules{}, fmt.Errorf("load calendars: %w", err)
	}
	if len(dates) > 0 {
		logger.Debug("calendar holidays loaded", "dir", cfg.Calendar.Dir, "count", len(dates))
		rules.AddHolidays(dates...)
	}

	return rules, nil
}

// tagSet unions tag lists from config, export header, and flags.
func tagSet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range groups {
		for _, tag := range group {
			set[tag] = struct{}{}
		}
	}
	return set
}
