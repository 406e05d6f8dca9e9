package util

import (
	"testing"
	"time"
)

func TestFormatPctSign(t *testing.T) {
	if got := FormatPct(0.3); got != "+0.30%" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatPct(-0.25); got != "-0.25%" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatPct(0); got != "+0.00%" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 4); got != 1.2346 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Round(-0.005, 2); got != 0 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Round(2.675, 2); got != 2.68 && got != 2.67 {
		// either is acceptable at float64 precision, but never something else
		t.Fatalf("unexpected %v", got)
	}
}

func parisTime(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, ParisLocation()) // a Monday
}

func TestCurrentSessionWindows(t *testing.T) {
	cases := []struct {
		h, m int
		want Session
	}{
		{3, 0, SessionAsia},
		{9, 30, SessionLondon},
		{14, 0, SessionOverlap},
		{18, 0, SessionNewYork},
		{23, 0, SessionOff},
	}
	for _, tc := range cases {
		got := CurrentSession(parisTime(tc.h, tc.m))
		if got.Current != tc.want {
			t.Fatalf("%02d:%02d: expected %s, got %s", tc.h, tc.m, tc.want, got.Current)
		}
	}
}

func TestCurrentSessionCountdown(t *testing.T) {
	got := CurrentSession(parisTime(7, 30))
	if got.Current != SessionAsia || got.NextSession != SessionLondon {
		t.Fatalf("unexpected %+v", got)
	}
	if got.MinutesToNext != 30 {
		t.Fatalf("expected 30 minutes to London, got %d", got.MinutesToNext)
	}
}

func TestIsWeekday(t *testing.T) {
	sat := time.Date(2026, 3, 7, 12, 0, 0, 0, ParisLocation())
	if IsWeekday(sat) {
		t.Fatal("saturday is not a weekday")
	}
	if !IsWeekday(parisTime(12, 0)) {
		t.Fatal("monday is a weekday")
	}
}
