package report

import "time"

// Windows holds the aggregation window boundaries as absolute instants.
type Windows struct {
	StartOfWeek  time.Time
	StartOfMonth time.Time
}

// WeekStartMillis returns the week boundary in epoch milliseconds.
func (w Windows) WeekStartMillis() int64 {
	return w.StartOfWeek.UnixMilli()
}

// MonthStartMillis returns the month boundary in epoch milliseconds.
func (w Windows) MonthStartMillis() int64 {
	return w.StartOfMonth.UnixMilli()
}

// ComputeWindows calculates the start of the current week and the start
// of the current month relative to now, in the civil calendar of loc.
//
// The week boundary is the most recent Sunday at 00:00:00 local time; when
// now itself falls on a Sunday the boundary is midnight of the same day.
// The month boundary is the 1st of the current local month at 00:00:00.
// Both are computed from local wall-clock fields, not by truncating a UTC
// timestamp, so the boundaries stay correct across DST transitions.
func ComputeWindows(now time.Time, loc *time.Location) Windows {
	local := now.In(loc)

	// time.Weekday numbers Sunday as 0.
	startOfWeek := time.Date(
		local.Year(), local.Month(), local.Day()-int(local.Weekday()),
		0, 0, 0, 0, loc,
	)
	startOfMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	return Windows{
		StartOfWeek:  startOfWeek,
		StartOfMonth: startOfMonth,
	}
}
