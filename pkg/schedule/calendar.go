package schedule

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Calendar is a YAML holiday calendar document.
type Calendar struct {
	Region   string    `yaml:"region"`
	Holidays []Holiday `yaml:"holidays"`
}

// Holiday is one dated calendar entry.
type Holiday struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// Dates returns the holiday dates declared by the calendar.
func (c *Calendar) Dates() []string {
	dates := make([]string, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		dates = append(dates, h.Date)
	}
	return dates
}

// LoadCalendar reads and validates a YAML calendar file.
func LoadCalendar(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calendar file %s: %w", path, err)
	}

	var cal Calendar
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("parse calendar file %s: %w", path, err)
	}

	if cal.Region == "" {
		return nil, fmt.Errorf("calendar file %s: missing region", path)
	}
	for _, h := range cal.Holidays {
		if _, err := time.Parse("2006-01-02", h.Date); err != nil {
			return nil, fmt.Errorf("calendar file %s: invalid holiday date %q", path, h.Date)
		}
	}

	return &cal, nil
}

// LoadCalendarDir loads every YAML calendar under dir and returns the
// union of their holiday dates. A missing directory yields no dates.
func LoadCalendarDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read calendar dir %s: %w", dir, err)
	}

	var dates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		cal, err := LoadCalendar(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		dates = append(dates, cal.Dates()...)
	}
	return dates, nil
}
