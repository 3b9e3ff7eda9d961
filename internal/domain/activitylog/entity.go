package activitylog

import "time"

// Log is one line of the append-only audit trail.
type Log struct {
	ID        string
	Action    string
	Performer string
	CreatedAt time.Time
}
