package reconcile

import (
	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
)

const minutesPerDay = 24 * 60

// ExpectedDailyMinutes resolves a shift definition into the minutes an
// employee is expected to work on one business day. The second return is
// false when the value came from the configured default, either because no
// shift is assigned or because the definition resolves to a non-positive
// span; callers surface that state instead of treating the default as a
// real shift.
func ExpectedDailyMinutes(s *shift.Shift, cfg reconcile.Config) (int, bool) {
	if s == nil {
		return cfg.DefaultDailyMinutes, false
	}

	start, startOK := NormalizePunch(s.StartClock)
	end, endOK := NormalizePunch(s.EndClock)
	if !startOK || !endOK {
		return cfg.DefaultDailyMinutes, false
	}

	span := end.MinuteOfDay() - start.MinuteOfDay()
	if span < 0 {
		// Overnight shift, the span wraps past midnight.
		span += minutesPerDay
	}

	span -= breakMinutes(s)
	if span <= 0 {
		return cfg.DefaultDailyMinutes, false
	}
	return span, true
}

// breakMinutes reads the break either as plain minutes or as a clock value
// whose hour and minute encode the duration, a convention some terminals
// use. An unreadable break counts as none.
func breakMinutes(s *shift.Shift) int {
	if s.BreakMinutes != nil {
		if *s.BreakMinutes > 0 {
			return *s.BreakMinutes
		}
		return 0
	}
	if s.BreakClock != nil {
		if t, ok := NormalizePunch(*s.BreakClock); ok {
			return t.MinuteOfDay()
		}
	}
	return 0
}
