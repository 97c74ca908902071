package domain

import (
	"time"
)

// TimeEntry is an in-memory mirror of a Clockify time entry.
// Entries are never persisted locally; every run re-fetches what it needs.
type TimeEntry struct {
	ID          string
	Description string
	Start       time.Time
	End         *time.Time
	ProjectID   string
	TagIDs      []string
	Billable    bool
}

// IsRunning returns true if the time entry has no end timestamp.
func (te TimeEntry) IsRunning() bool {
	return te.End == nil
}

// Duration returns the elapsed time between start and end.
// The second return value is false while the entry is still running.
func (te TimeEntry) Duration() (time.Duration, bool) {
	if te.End == nil {
		return 0, false
	}
	return te.End.Sub(te.Start), true
}

// Stop returns a copy of the entry with the given end timestamp set.
func (te TimeEntry) Stop(end time.Time) TimeEntry {
	te.End = &end
	return te
}

// IsValid checks if the time entry has consistent data.
func (te TimeEntry) IsValid() bool {
	if te.Start.IsZero() {
		return false
	}
	if te.End != nil && te.End.Before(te.Start) {
		return false
	}
	return true
}
