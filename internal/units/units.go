// Package units converts between the three representations of a week's
// allocation: percent of a 40-hour week (the canonical stored unit), decimal
// hours, and the "H:MM" text used for input and display. All converters
// coerce malformed input to 0 rather than failing.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/capworks/captrack/internal/constants"
)

// ClampCapacity coerces a percentage to the canonical stored representation:
// rounded to 3 decimal places, floored at 0. Non-finite input becomes 0.
func ClampCapacity(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Max(0, math.Round(value*1000)/1000)
}

// NormalizeCapacityValue clamps a numeric percentage input.
func NormalizeCapacityValue(value float64) float64 {
	return ClampCapacity(value)
}

// NormalizeCapacityInput parses a typed percentage. Only digit characters
// survive: fractional text is not honored, leading zeros are stripped, and
// anything unparseable becomes 0.
func NormalizeCapacityInput(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	digits := keepDigits(trimmed)
	if digits == "" {
		return 0
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return ClampCapacity(n)
}

// PercentToHours converts a percent-of-week figure to decimal hours.
func PercentToHours(percent float64) float64 {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}
	return math.Max(0, percent/100*constants.HoursPerWeek)
}

// HoursToPercent converts decimal hours to the canonical clamped percentage.
func HoursToPercent(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return ClampCapacity(hours / constants.HoursPerWeek * 100)
}

// NormalizeHoursValue floors a numeric hours figure at 0.
func NormalizeHoursValue(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return math.Max(0, hours)
}

// NormalizeHoursInput parses a typed hours value. "H:MM" splits on the first
// colon with non-digits stripped from each side; a plain numeric string
// parses directly; any other text is reduced to its digits and read as a
// whole number. All paths floor at 0, and empty or unparseable input is 0.
func NormalizeHoursInput(raw string) float64 {
	compact := strings.Join(strings.Fields(raw), "")
	if compact == "" {
		return 0
	}
	if strings.Contains(compact, ":") {
		parts := strings.SplitN(compact, ":", 2)
		hourDigits := keepDigits(parts[0])
		minuteDigits := keepDigits(parts[1])
		if hourDigits == "" && minuteDigits == "" {
			return 0
		}
		hours := parseDigits(hourDigits)
		minutes := parseDigits(minuteDigits)
		return math.Max(0, (hours*60+minutes)/60)
	}
	if n, err := strconv.ParseFloat(compact, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return math.Max(0, n)
	}
	digits := keepDigits(compact)
	if digits == "" {
		return 0
	}
	return math.Max(0, parseDigits(digits))
}

// FormatHoursInput renders decimal hours as "H:MM", rounded to the nearest
// whole minute. Non-finite input renders as "0:00".
func FormatHoursInput(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "0:00"
	}
	totalMinutes := int(math.Max(0, math.Round(hours*60)))
	return fmt.Sprintf("%d:%02d", totalMinutes/60, totalMinutes%60)
}

// LimitWordCount truncates free text to at most maxWords whitespace-separated
// words, preserving the original spacing between the kept words.
func LimitWordCount(value string, maxWords int) string {
	count := 0
	inWord := false
	cut := -1
	for i, r := range value {
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
		if !isSpace && !inWord {
			count++
			if count > maxWords {
				cut = i
				break
			}
			inWord = true
		} else if isSpace {
			inWord = false
		}
	}
	if cut < 0 {
		return value
	}
	return strings.TrimRight(value[:cut], " \t\n\r\v\f")
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseDigits(s string) float64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
