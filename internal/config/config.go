package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yapay-ai/hours-guardian/pkg/schedule"
)

// Config holds all hours-guardian configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Report   ReportConfig   `mapstructure:"report"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig defines report defaults applied beneath the export's own
// directives.
type ReportConfig struct {
	IgnoreTags  []string `mapstructure:"ignore_tags"`
	HoursPerDay float64  `mapstructure:"hours_per_day"`
	Color       string   `mapstructure:"color"`
}

// CalendarConfig defines where holiday calendars live.
type CalendarConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".hours-guardian"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Defaults
	home, _ := os.UserHomeDir()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("report.ignore_tags", []string{})
	v.SetDefault("report.hours_per_day", schedule.DefaultHoursPerDay)
	v.SetDefault("report.color", "always")
	v.SetDefault("calendar.dir", filepath.Join(home, ".hours-guardian", "calendars"))

	// Environment variables
	v.SetEnvPrefix("HOURS_GUARDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Report.HoursPerDay <= 0 {
		cfg.Report.HoursPerDay = schedule.DefaultHoursPerDay
	}

	return &cfg, nil
}
