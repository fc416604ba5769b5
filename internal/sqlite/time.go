package sqlite

import "time"

// Timestamps are stored as RFC3339 text in UTC. Ordering queries go
// through datetime(created_at) with the row id as tiebreaker, so the
// textual representation never has to sort lexicographically.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
