package terminal

import (
	"fmt"
	"math"
)

// FormatHours renders fractional hours as H:MM, truncating to whole
// minutes. When signed, the magnitude carries a +/- prefix; zero counts
// as positive.
func FormatHours(hours float64, signed bool) string {
	sign := ""
	if signed {
		if hours >= 0 {
			sign = "+"
		} else {
			sign = "-"
		}
	}

	hours = math.Abs(hours)
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%s%d:%02d", sign, h, m)
}
