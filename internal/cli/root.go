package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/hours-guardian/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hours-guardian",
	Short: "Compare tracked hours against your work-hour goals",
	Long: `hours-guardian reads a timewarrior export from standard input and prints
a report of actual versus projected hours: one row per day with running
totals, optional weekly summaries, tag exclusions, and holiday-aware goals.`,
	SilenceUsage: true,
	RunE:         runReport,
	// timew hands its own flags through the pipeline; never reject them.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.hours-guardian/config.yaml)")
	rootCmd.Flags().StringSlice("ignore", nil, "additional tags to ignore")
	rootCmd.Flags().String("color", "", "color output: always, auto, or never")
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
