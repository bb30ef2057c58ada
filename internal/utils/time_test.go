package utils

import "testing"

func TestWeekdayName(t *testing.T) {
	got, err := WeekdayName("2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Tuesday" {
		t.Fatalf("weekday = %q, want Tuesday", got)
	}
}

func TestWeekdayNameRejectsBadDate(t *testing.T) {
	if _, err := WeekdayName("01-09-2026"); err == nil {
		t.Fatal("expected error for non YYYY-MM-DD input")
	}
}

func TestSegmentDuration(t *testing.T) {
	cases := []struct {
		dep    string
		depDay int
		arr    string
		arrDay int
		want   string
	}{
		{"16:55", 1, "20:15", 2, "27:20"},
		{"06:00", 1, "14:00", 1, "08:00"},
		{"23:30", 1, "00:15", 2, "00:45"},
		{"bad", 1, "14:00", 1, ""},
		{"14:00", 2, "06:00", 1, ""},
	}
	for _, c := range cases {
		if got := SegmentDuration(c.dep, c.depDay, c.arr, c.arrDay); got != c.want {
			t.Fatalf("SegmentDuration(%q,%d,%q,%d) = %q, want %q", c.dep, c.depDay, c.arr, c.arrDay, got, c.want)
		}
	}
}

func TestFormatParseDateRoundTrip(t *testing.T) {
	const date = "2026-03-14"
	parsed, err := ParseDate(date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(parsed) != date {
		t.Fatalf("round trip gave %q, want %q", FormatDate(parsed), date)
	}
}
