package timew

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yapay-ai/hours-guardian/pkg/model"
)

// TimeLayout is the timestamp format used by timewarrior exports.
const TimeLayout = "20060102T150405Z"

// ErrNoPayload is returned when no JSON interval array follows the
// configuration header.
var ErrNoPayload = errors.New("no JSON payload found in export")

// Export is a timewarrior export split into its two halves: the free-form
// configuration header and the raw JSON interval payload.
type Export struct {
	Header  Header
	payload string
}

// ReadExport consumes all of r and splits it at the first line whose
// trimmed form begins with "[". Everything before that line is header;
// that line and everything after it is the JSON payload.
func ReadExport(r io.Reader) (*Export, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrNoPayload
	}

	return &Export{
		Header:  Header(lines[:start]),
		payload: strings.Join(lines[start:], "\n"),
	}, nil
}

// Intervals decodes the JSON payload. Any malformed record fails the
// whole decode.
func (e *Export) Intervals() ([]model.Interval, error) {
	var raw []rawInterval
	if err := json.Unmarshal([]byte(e.payload), &raw); err != nil {
		return nil, fmt.Errorf("parse interval payload: %w", err)
	}

	intervals := make([]model.Interval, 0, len(raw))
	for i, r := range raw {
		iv, err := r.interval()
		if err != nil {
			return nil, fmt.Errorf("interval %d: %w", i, err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

type rawInterval struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Tags  []string `json:"tags"`
}

func (r rawInterval) interval() (model.Interval, error) {
	start, err := time.Parse(TimeLayout, r.Start)
	if err != nil {
		return model.Interval{}, fmt.Errorf("parse start %q: %w", r.Start, err)
	}

	iv := model.Interval{Start: start, Tags: r.Tags}
	if r.End != "" {
		end, err := time.Parse(TimeLayout, r.End)
		if err != nil {
			return model.Interval{}, fmt.Errorf("parse end %q: %w", r.End, err)
		}
		iv.End = end
	}
	return iv, nil
}
