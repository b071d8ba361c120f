package dates

import (
	"testing"
	"time"
)

func TestParseISODateLocal_StrictShape(t *testing.T) {
	got := ParseISODateLocal("2026-02-02")
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 2 {
		t.Errorf("ParseISODateLocal returned %v", got)
	}
	if got.Location() != time.Local {
		t.Errorf("expected local timezone, got %v", got.Location())
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestParseISODateLocal_RejectsOutOfRange(t *testing.T) {
	// month 13 fails the strict shape and the fallbacks
	if got := ParseISODateLocal("2026-13-02"); !got.IsZero() {
		t.Errorf("expected zero time for invalid month, got %v", got)
	}
	if got := ParseISODateLocal("garbage"); !got.IsZero() {
		t.Errorf("expected zero time for garbage, got %v", got)
	}
}

func TestWeekStartOf(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2026-02-04", "2026-02-02"}, // Wednesday -> Monday
		{"2026-02-02", "2026-02-02"}, // Monday -> itself
		{"2026-02-08", "2026-02-02"}, // Sunday -> previous Monday
		{"2026-02-09", "2026-02-09"}, // next Monday
	}
	for _, c := range cases {
		if got := WeekStartOf(ParseISODateLocal(c.day)); got != c.want {
			t.Errorf("WeekStartOf(%s) = %s, want %s", c.day, got, c.want)
		}
	}
}

func TestWeekLabels_SingleMonth(t *testing.T) {
	labels := WeekLabels("2026-02-02")
	if labels[0] != "2–6 February 2026" {
		t.Errorf("week 1 label = %q", labels[0])
	}
	if labels[1] != "9–13 February 2026" {
		t.Errorf("week 2 label = %q", labels[1])
	}
}

func TestWeekLabels_MonthBoundary(t *testing.T) {
	// A week starting the 30th of a 30-day month spans into the next month.
	labels := WeekLabels("2026-04-30")
	if labels[0] != "30 April – 4 May 2026" {
		t.Errorf("cross-month label = %q", labels[0])
	}
}

func TestShortWeekLabel(t *testing.T) {
	if got := ShortWeekLabel("2–6 February 2026"); got != "2–6 February" {
		t.Errorf("ShortWeekLabel = %q", got)
	}
	if got := ShortWeekLabel("30 April – 4 May 2026"); got != "30 April – 4 May" {
		t.Errorf("ShortWeekLabel cross-month = %q", got)
	}
}

func TestFormatLeaveDaySpans(t *testing.T) {
	cases := []struct {
		week [5]bool
		want string
	}{
		{[5]bool{true, true, false, true, false}, "Mon–Tues, Thurs"},
		{[5]bool{false, false, false, false, false}, "-"},
		{[5]bool{true, true, true, true, true}, "Mon–Fri"},
		{[5]bool{false, false, true, false, false}, "Wed"},
		{[5]bool{true, false, true, false, true}, "Mon, Wed, Fri"},
		{[5]bool{false, true, true, true, false}, "Tues–Thurs"},
	}
	for _, c := range cases {
		if got := FormatLeaveDaySpans(c.week); got != c.want {
			t.Errorf("FormatLeaveDaySpans(%v) = %q, want %q", c.week, got, c.want)
		}
	}
}

func TestAllLeaveDates_Empty(t *testing.T) {
	var leave [4][5]bool
	if got := AllLeaveDates("2026-02-02", leave); got != "-" {
		t.Errorf("AllLeaveDates with no leave = %q, want -", got)
	}
}

func TestAllLeaveDates_SingleDayAndRange(t *testing.T) {
	var leave [4][5]bool
	leave[0][0] = true                              // Mon 2 Feb
	leave[1][2], leave[1][3], leave[1][4] = true, true, true // Wed 11 - Fri 13 Feb
	got := AllLeaveDates("2026-02-02", leave)
	want := "2, 11–13 Feb"
	if got != want {
		t.Errorf("AllLeaveDates = %q, want %q", got, want)
	}
}

func TestAllLeaveDates_MonthBoundaryRange(t *testing.T) {
	// Horizon starting Mon 23 Feb 2026: week 2 runs 2-6 March.
	var leave [4][5]bool
	leave[0][4] = true // Fri 27 Feb
	leave[1][0] = true // Mon 2 Mar, the weekend gap breaks the range
	got := AllLeaveDates("2026-02-23", leave)
	want := "27 Feb, 2 Mar"
	if got != want {
		t.Errorf("AllLeaveDates = %q, want %q", got, want)
	}
}

func TestAllLeaveDates_RangeCrossingMonth(t *testing.T) {
	// Horizon starting Mon 27 Apr 2026: Thu 30 Apr and Fri 1 May are
	// consecutive days across the month boundary.
	var leave [4][5]bool
	leave[0][3] = true // Thu 30 Apr
	leave[0][4] = true // Fri 1 May
	got := AllLeaveDates("2026-04-27", leave)
	want := "30 Apr–1 May"
	if got != want {
		t.Errorf("AllLeaveDates = %q, want %q", got, want)
	}
}

func TestAllLeaveDates_AllWeeks(t *testing.T) {
	var leave [4][5]bool
	for w := range leave {
		for d := range leave[w] {
			leave[w][d] = true
		}
	}
	// Four Mon-Fri blocks in February 2026, separated by weekends.
	got := AllLeaveDates("2026-02-02", leave)
	want := "2–6, 9–13, 16–20, 23–27 Feb"
	if got != want {
		t.Errorf("AllLeaveDates = %q, want %q", got, want)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2026-02-02"); got != "2 February 2026" {
		t.Errorf("FormatDisplayDate = %q", got)
	}
}
