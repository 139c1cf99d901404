package report

import "github.com/goodtune/cardiotrack/internal/storage"

// Summary holds the aggregates reported alongside a session listing.
type Summary struct {
	MinutesThisWeek  int64
	MinutesThisMonth int64
	ExerciseTypes    []string
}

// Aggregate computes per-window exercise minutes and the distinct set of
// manually-logged exercise types over the given sessions.
//
// Sessions count toward a window when finishTime >= the window boundary.
// Seconds are summed per window and floored to whole minutes. Records with
// a non-positive finishTime or length contribute nothing to the sums but
// still appear in the type set when manual. Exercise types keep first-seen
// order so results are deterministic.
func Aggregate(sessions []storage.Session, w Windows) Summary {
	weekStart := w.WeekStartMillis()
	monthStart := w.MonthStartMillis()

	var weekSeconds, monthSeconds int64
	seen := make(map[string]struct{})
	types := make([]string, 0)

	for i := range sessions {
		session := &sessions[i]

		if session.FinishTime > 0 && session.Length > 0 {
			if session.FinishTime >= weekStart {
				weekSeconds += session.Length
			}
			if session.FinishTime >= monthStart {
				monthSeconds += session.Length
			}
		}

		if session.IsManual() {
			if _, ok := seen[session.Description]; !ok {
				seen[session.Description] = struct{}{}
				types = append(types, session.Description)
			}
		}
	}

	return Summary{
		MinutesThisWeek:  weekSeconds / 60,
		MinutesThisMonth: monthSeconds / 60,
		ExerciseTypes:    types,
	}
}
