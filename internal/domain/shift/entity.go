package shift

import "time"

// Shift is a daily work window. EndClock earlier than StartClock means the
// shift crosses midnight and its span wraps modulo 24h.
type Shift struct {
	ID        string
	CompanyID string
	Name      string
	// Clock values, "HH:MM".
	StartClock string
	EndClock   string
	// Break duration. Exactly one of the two is usually set: BreakMinutes
	// holds plain minutes, BreakClock holds a clock value whose
	// hour*60+minute is the break length (a legacy time-clock convention).
	BreakMinutes *int
	BreakClock   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
