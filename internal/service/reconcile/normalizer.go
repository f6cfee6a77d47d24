package reconcile

import (
	"strings"
	"time"
)

// TimeOfDay is a punch reduced to a wall-clock position, the only thing the
// daily calculation needs.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the position as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// rawKind is the closed set of shapes a raw punch slot can take. Every slot
// is classified exactly once; everything the classifier cannot place is
// invalid and contributes nothing.
type rawKind int

const (
	rawInvalid rawKind = iota
	rawClock
	rawTimestamp
	rawCompact
)

type rawPunch struct {
	kind rawKind
	at   TimeOfDay
}

// absence markers occasionally emitted by clock terminals instead of an
// empty slot.
var absenceMarkers = map[string]bool{
	"-":     true,
	"--":    true,
	"--:--": true,
	"null":  true,
}

var clockLayouts = []string{"15:04", "15:04:05"}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// classifyRaw resolves one raw slot value into the tagged punch variant.
func classifyRaw(value string) rawPunch {
	v := strings.TrimSpace(value)
	if v == "" || absenceMarkers[strings.ToLower(v)] {
		return rawPunch{kind: rawInvalid}
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return rawPunch{kind: rawClock, at: TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}}
		}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return rawPunch{kind: rawTimestamp, at: TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}}
		}
	}

	if len(v) == 3 || len(v) == 4 {
		if at, ok := compactToTime(v); ok {
			return rawPunch{kind: rawCompact, at: at}
		}
	}

	return rawPunch{kind: rawInvalid}
}

// compactToTime reads "830" as 08:30 and "1430" as 14:30.
func compactToTime(v string) (TimeOfDay, bool) {
	for _, c := range v {
		if c < '0' || c > '9' {
			return TimeOfDay{}, false
		}
	}

	hourDigits := len(v) - 2
	hour, minute := 0, 0
	for _, c := range v[:hourDigits] {
		hour = hour*10 + int(c-'0')
	}
	for _, c := range v[hourDigits:] {
		minute = minute*10 + int(c-'0')
	}

	if hour > 23 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// NormalizePunch parses one raw punch value into a canonical time-of-day.
// It never fails: unrecognized shapes, empty slots and absence markers all
// report ok=false so one bad punch cannot spoil the rest of the day.
func NormalizePunch(value string) (TimeOfDay, bool) {
	p := classifyRaw(value)
	if p.kind == rawInvalid {
		return TimeOfDay{}, false
	}
	return p.at, true
}
