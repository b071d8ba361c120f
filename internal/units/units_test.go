package units

import (
	"math"
	"testing"
)

func TestClampCapacity_RoundsAndFloors(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{12.3456, 12.346},
		{-5, 0},
		{0, 0},
		{100.0004, 100},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := ClampCapacity(c.in); got != c.want {
			t.Errorf("ClampCapacity(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeCapacityInput_DigitsOnly(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"50", 50},
		{"  50  ", 50},
		{"", 0},
		{"abc", 0},
		{"0050", 50},
		{"12.5", 125}, // decimal point is stripped, digits concatenate
		{"50%", 50},
		{"000", 0},
	}
	for _, c := range cases {
		if got := NormalizeCapacityInput(c.in); got != c.want {
			t.Errorf("NormalizeCapacityInput(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeHoursInput(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"8", 8},
		{"7.5", 7.5},
		{"2:30", 2.5},
		{" 2 : 30 ", 2.5},
		{":45", 0.75},
		{"8:", 8},
		{"8h30m", 830}, // no colon: digits concatenate to a whole number
		{"", 0},
		{"::", 0},
		{"abc", 0},
		{"-4", 0},
	}
	for _, c := range cases {
		if got := NormalizeHoursInput(c.in); got != c.want {
			t.Errorf("NormalizeHoursInput(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatHoursInput(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{8, "8:00"},
		{2.5, "2:30"},
		{1.999, "2:00"}, // rounds to nearest minute
		{0.008, "0:00"},
		{-3, "0:00"},
		{math.NaN(), "0:00"},
		{math.Inf(1), "0:00"},
	}
	for _, c := range cases {
		if got := FormatHoursInput(c.in); got != c.want {
			t.Errorf("FormatHoursInput(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTrip_HoursThroughPercent(t *testing.T) {
	// percentToHours(hoursToPercent(h)) == h within one-minute tolerance
	for _, h := range []float64{0, 0.25, 1, 7.5, 8, 38.75, 40, 55} {
		got := PercentToHours(HoursToPercent(h))
		if math.Abs(got-h) > 1.0/60+1e-9 {
			t.Errorf("round trip for %v hours drifted to %v", h, got)
		}
	}
}

func TestRoundTrip_PercentThroughHours(t *testing.T) {
	// hoursToPercent(percentToHours(p)) == p within 3-decimal tolerance
	for _, p := range []float64{0, 12.5, 20, 33.333, 100, 112.5} {
		got := HoursToPercent(PercentToHours(p))
		if math.Abs(got-p) > 0.0005+1e-9 {
			t.Errorf("round trip for %v percent drifted to %v", p, got)
		}
	}
}

func TestPercentToHours_Negative(t *testing.T) {
	if got := PercentToHours(-50); got != 0 {
		t.Errorf("PercentToHours(-50) = %v, want 0", got)
	}
	if got := HoursToPercent(-8); got != 0 {
		t.Errorf("HoursToPercent(-8) = %v, want 0", got)
	}
}

func TestLimitWordCount(t *testing.T) {
	if got := LimitWordCount("one two three four", 2); got != "one two" {
		t.Errorf("LimitWordCount = %q, want %q", got, "one two")
	}
	if got := LimitWordCount("one two", 5); got != "one two" {
		t.Errorf("LimitWordCount should not touch text under the limit, got %q", got)
	}
	if got := LimitWordCount("one  two   three", 2); got != "one  two" {
		t.Errorf("LimitWordCount should preserve inner spacing, got %q", got)
	}
	if got := LimitWordCount("", 3); got != "" {
		t.Errorf("LimitWordCount on empty input = %q", got)
	}
}
