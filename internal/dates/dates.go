// Package dates handles the week arithmetic and human-readable range
// formatting used throughout the tracker. All parsing is local-timezone to
// avoid the off-by-one-day drift that UTC parsing of bare dates causes.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/capworks/captrack/internal/constants"
)

const isoDateLayout = "2006-01-02"

// dayLabels are the abbreviations used for leave-span display.
var dayLabels = [constants.DaysPerWeek]string{"Mon", "Tues", "Wed", "Thurs", "Fri"}

// ParseISODateLocal parses "YYYY-MM-DD" as a local-timezone date. If the
// strict year-month-day shape fails integer or range validation, it falls
// back to generic layouts; anything unparseable yields the zero time.
func ParseISODateLocal(dateStr string) time.Time {
	parts := strings.SplitN(dateStr, "-", 3)
	if len(parts) == 3 {
		year, errY := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		day, errD := strconv.Atoi(parts[2])
		if errY == nil && errM == nil && errD == nil &&
			month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006/01/02"} {
		if t, err := time.ParseInLocation(layout, dateStr, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatISODateLocal renders a date as "YYYY-MM-DD".
func FormatISODateLocal(t time.Time) string {
	return t.Format(isoDateLayout)
}

// WeekStartOf returns the ISO date of the Monday of t's week. Sunday counts
// as day 7 of the previous week.
func WeekStartOf(t time.Time) string {
	shift := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	monday = monday.AddDate(0, 0, -shift)
	return FormatISODateLocal(monday)
}

// CurrentWeekStart returns the ISO date of the Monday of the current local
// week.
func CurrentWeekStart() string {
	return WeekStartOf(time.Now())
}

// FormatDisplayDate renders an ISO date as "2 February 2026".
func FormatDisplayDate(dateStr string) string {
	t := ParseISODateLocal(dateStr)
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month().String(), t.Year())
}

// WeekLabels produces one Monday-Friday label per horizon week. Weeks inside
// a single month render as "2–6 February 2026"; weeks spanning a month
// boundary render as "30 April – 4 May 2026".
func WeekLabels(startDateStr string) [constants.WeeksPerEntry]string {
	startDate := ParseISODateLocal(startDateStr)
	var labels [constants.WeeksPerEntry]string
	for i := range labels {
		monday := startDate.AddDate(0, 0, i*7)
		friday := monday.AddDate(0, 0, 4)
		if monday.Month() == friday.Month() {
			labels[i] = fmt.Sprintf("%d–%d %s %d", monday.Day(), friday.Day(), monday.Month(), friday.Year())
		} else {
			labels[i] = fmt.Sprintf("%d %s – %d %s %d", monday.Day(), monday.Month(), friday.Day(), friday.Month(), friday.Year())
		}
	}
	return labels
}

// ShortWeekLabel strips the trailing year from a week label for compact
// display ("2–6 February 2026" -> "2–6 February").
func ShortWeekLabel(label string) string {
	if idx := strings.LastIndex(label, " "); idx > 0 {
		if _, err := strconv.Atoi(label[idx+1:]); err == nil {
			return label[:idx]
		}
	}
	return label
}

// FormatLeaveDaySpans compresses one week's leave flags into comma-joined
// day ranges: a lone day renders as its name, a run of two or more as
// "Start–End", and an empty week as "-".
func FormatLeaveDaySpans(week [constants.DaysPerWeek]bool) string {
	var selected []int
	for i, off := range week {
		if off {
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		return "-"
	}

	var segments []string
	rangeStart, rangeEnd := selected[0], selected[0]
	flush := func() {
		if rangeStart == rangeEnd {
			segments = append(segments, dayLabels[rangeStart])
			return
		}
		segments = append(segments, dayLabels[rangeStart]+"–"+dayLabels[rangeEnd])
	}
	for _, idx := range selected[1:] {
		if idx == rangeEnd+1 {
			rangeEnd = idx
			continue
		}
		flush()
		rangeStart, rangeEnd = idx, idx
	}
	flush()

	return strings.Join(segments, ", ")
}

// AllLeaveDates expands the full leave grid to calendar dates and compresses
// them into a single comma-joined string: consecutive ranges within a month
// group as "2, 5–6 Feb", and a range crossing a month boundary renders as
// "30 Apr–1 May". No leave renders as "-".
func AllLeaveDates(startDateStr string, leave [constants.WeeksPerEntry][constants.DaysPerWeek]bool) string {
	startDate := ParseISODateLocal(startDateStr)
	var days []time.Time
	for w, week := range leave {
		for d, off := range week {
			if off {
				days = append(days, startDate.AddDate(0, 0, w*7+d))
			}
		}
	}
	if len(days) == 0 {
		return "-"
	}
	// The grid walk above emits dates in ascending order already.

	type dateRange struct{ start, end time.Time }
	var ranges []dateRange
	current := dateRange{days[0], days[0]}
	for _, d := range days[1:] {
		if sameDay(d, current.end.AddDate(0, 0, 1)) {
			current.end = d
			continue
		}
		ranges = append(ranges, current)
		current = dateRange{d, d}
	}
	ranges = append(ranges, current)

	var parts []string
	var monthParts []string
	monthLabel := ""
	flushMonth := func() {
		if len(monthParts) > 0 {
			parts = append(parts, strings.Join(monthParts, ", ")+" "+monthLabel)
			monthParts = nil
			monthLabel = ""
		}
	}
	for _, r := range ranges {
		startMonth := r.start.Format("Jan")
		endMonth := r.end.Format("Jan")
		if startMonth != endMonth {
			flushMonth()
			parts = append(parts, fmt.Sprintf("%d %s–%d %s", r.start.Day(), startMonth, r.end.Day(), endMonth))
			continue
		}
		if startMonth != monthLabel {
			flushMonth()
			monthLabel = startMonth
		}
		if r.start.Day() == r.end.Day() {
			monthParts = append(monthParts, strconv.Itoa(r.start.Day()))
		} else {
			monthParts = append(monthParts, fmt.Sprintf("%d–%d", r.start.Day(), r.end.Day()))
		}
	}
	flushMonth()

	return strings.Join(parts, ", ")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
