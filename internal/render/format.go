package render

import (
	"math"
	"strconv"
)

// FormatAmount renders sales values in abbreviated units: "2.5M", "2K",
// "999". One implementation shared by axis ticks, bar labels, donut
// annotations and the preview, so every panel agrees.
// Halves round away from zero (1500 -> "2K").
func FormatAmount(v float64) string {
	switch {
	case v >= 1_000_000:
		return strconv.FormatFloat(math.Round(v/100_000)/10, 'f', 1, 64) + "M"
	case v >= 1_000:
		return strconv.FormatFloat(math.Round(v/1_000), 'f', 0, 64) + "K"
	default:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
}
