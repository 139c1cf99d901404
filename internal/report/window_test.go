package report

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestComputeWindowsMidweek(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	// Wednesday 2024-03-13 15:00 local
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, loc)
	w := ComputeWindows(now, loc)

	wantWeek := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc) // preceding Sunday
	wantMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)

	if !w.StartOfWeek.Equal(wantWeek) {
		t.Errorf("StartOfWeek = %v, want %v", w.StartOfWeek, wantWeek)
	}
	if !w.StartOfMonth.Equal(wantMonth) {
		t.Errorf("StartOfMonth = %v, want %v", w.StartOfMonth, wantMonth)
	}
}

func TestComputeWindowsOnSundayMidnight(t *testing.T) {
	loc := mustLocation(t, "Europe/Stockholm")

	// Exactly Sunday 00:00:00.000 local: boundary is the same instant,
	// not the previous week.
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	w := ComputeWindows(now, loc)

	if !w.StartOfWeek.Equal(now) {
		t.Errorf("StartOfWeek = %v, want %v", w.StartOfWeek, now)
	}
}

func TestComputeWindowsSundayAfternoon(t *testing.T) {
	loc := mustLocation(t, "Europe/Stockholm")

	now := time.Date(2024, time.March, 10, 17, 30, 0, 0, loc)
	w := ComputeWindows(now, loc)

	wantWeek := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	if !w.StartOfWeek.Equal(wantWeek) {
		t.Errorf("StartOfWeek = %v, want current Sunday midnight %v", w.StartOfWeek, wantWeek)
	}
}

func TestComputeWindowsWeekSpansMonthBoundary(t *testing.T) {
	loc := mustLocation(t, "America/New_York")

	// Friday 2024-03-01: the week began Sunday 2024-02-25, in the prior month.
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, loc)
	w := ComputeWindows(now, loc)

	wantWeek := time.Date(2024, time.February, 25, 0, 0, 0, 0, loc)
	wantMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)

	if !w.StartOfWeek.Equal(wantWeek) {
		t.Errorf("StartOfWeek = %v, want %v", w.StartOfWeek, wantWeek)
	}
	if !w.StartOfMonth.Equal(wantMonth) {
		t.Errorf("StartOfMonth = %v, want %v", w.StartOfMonth, wantMonth)
	}
	if !w.StartOfWeek.Before(w.StartOfMonth) {
		t.Error("expected week boundary before month boundary in this scenario")
	}
}

func TestComputeWindowsAcrossDSTTransition(t *testing.T) {
	loc := mustLocation(t, "America/New_York")

	// US DST started Sunday 2024-03-10 at 02:00. Monday after the change:
	// the week boundary must still be Sunday 00:00 local wall clock, which
	// is 25 (not 24) hours before Monday 01:00.
	now := time.Date(2024, time.March, 11, 10, 0, 0, 0, loc)
	w := ComputeWindows(now, loc)

	wantWeek := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	if !w.StartOfWeek.Equal(wantWeek) {
		t.Errorf("StartOfWeek = %v, want %v", w.StartOfWeek, wantWeek)
	}
	if w.StartOfWeek.Weekday() != time.Sunday {
		t.Errorf("StartOfWeek weekday = %v, want Sunday", w.StartOfWeek.Weekday())
	}
}

func TestComputeWindowsZoneVsUTCDiffer(t *testing.T) {
	tokyo := mustLocation(t, "Asia/Tokyo")

	// Sunday 23:00 UTC is already Monday 08:00 in Tokyo. A UTC-based
	// computation would pick the wrong Sunday.
	now := time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC)
	w := ComputeWindows(now, tokyo)

	wantWeek := time.Date(2024, time.March, 10, 0, 0, 0, 0, tokyo)
	if !w.StartOfWeek.Equal(wantWeek) {
		t.Errorf("StartOfWeek = %v, want %v", w.StartOfWeek, wantWeek)
	}
}

func TestComputeWindowsProperties(t *testing.T) {
	loc := mustLocation(t, "Europe/Stockholm")

	instants := []time.Time{
		time.Date(2023, time.December, 31, 23, 59, 59, 999_000_000, loc),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, loc),
		time.Date(2024, time.June, 15, 6, 30, 0, 0, loc),
		time.Date(2024, time.November, 3, 1, 30, 0, 0, loc),
	}

	for _, now := range instants {
		w := ComputeWindows(now, loc)

		if w.StartOfWeek.After(now) {
			t.Errorf("%v: StartOfWeek %v after now", now, w.StartOfWeek)
		}
		if w.StartOfMonth.After(now) {
			t.Errorf("%v: StartOfMonth %v after now", now, w.StartOfMonth)
		}
		if w.StartOfWeek.Weekday() != time.Sunday {
			t.Errorf("%v: StartOfWeek falls on %v", now, w.StartOfWeek.Weekday())
		}
		local := w.StartOfWeek.In(loc)
		if local.Hour() != 0 || local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
			t.Errorf("%v: StartOfWeek not at local midnight: %v", now, local)
		}
		monthLocal := w.StartOfMonth.In(loc)
		if monthLocal.Day() != 1 || monthLocal.Hour() != 0 {
			t.Errorf("%v: StartOfMonth not at 1st midnight: %v", now, monthLocal)
		}

		// Idempotence
		again := ComputeWindows(now, loc)
		if !again.StartOfWeek.Equal(w.StartOfWeek) || !again.StartOfMonth.Equal(w.StartOfMonth) {
			t.Errorf("%v: repeated computation differs", now)
		}
	}
}

func TestComputeWindowsMonotonicWithinWeek(t *testing.T) {
	loc := mustLocation(t, "Europe/Stockholm")

	monday := time.Date(2024, time.March, 11, 9, 0, 0, 0, loc)
	thursday := time.Date(2024, time.March, 14, 21, 0, 0, 0, loc)
	nextMonday := time.Date(2024, time.March, 18, 9, 0, 0, 0, loc)

	w1 := ComputeWindows(monday, loc)
	w2 := ComputeWindows(thursday, loc)
	if !w1.StartOfWeek.Equal(w2.StartOfWeek) || !w1.StartOfMonth.Equal(w2.StartOfMonth) {
		t.Error("boundaries changed within the same week and month")
	}

	w3 := ComputeWindows(nextMonday, loc)
	if !w3.StartOfWeek.After(w1.StartOfWeek) {
		t.Error("week boundary did not advance after crossing into the next week")
	}
	if !w3.StartOfMonth.Equal(w1.StartOfMonth) {
		t.Error("month boundary changed without crossing a month")
	}
}
