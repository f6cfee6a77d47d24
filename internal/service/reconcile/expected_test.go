package reconcile

import (
	"testing"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
)

var testCfg = reconcile.Config{ToleranceMinutes: 1, DefaultDailyMinutes: 480}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestExpectedDailyMinutes_DayShift(t *testing.T) {
	t.Parallel()

	s := &shift.Shift{StartClock: "08:00", EndClock: "17:00", BreakMinutes: intPtr(60)}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.True(t, configured)
}

func TestExpectedDailyMinutes_OvernightShift(t *testing.T) {
	t.Parallel()

	// 22:00 to 06:00 wraps past midnight: eight hours.
	s := &shift.Shift{StartClock: "22:00", EndClock: "06:00"}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.True(t, configured)
}

func TestExpectedDailyMinutes_BreakAsClockValue(t *testing.T) {
	t.Parallel()

	// Some terminals encode the break as a clock value: 01:30 means 90
	// minutes.
	s := &shift.Shift{StartClock: "08:00", EndClock: "18:00", BreakClock: strPtr("01:30")}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 510, minutes)
	assert.True(t, configured)
}

func TestExpectedDailyMinutes_NoShiftFallsBack(t *testing.T) {
	t.Parallel()

	minutes, configured := ExpectedDailyMinutes(nil, testCfg)

	assert.Equal(t, 480, minutes)
	assert.False(t, configured)
}

func TestExpectedDailyMinutes_NonPositiveSpanFallsBack(t *testing.T) {
	t.Parallel()

	// Break swallows the whole span.
	s := &shift.Shift{StartClock: "08:00", EndClock: "09:00", BreakMinutes: intPtr(120)}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.False(t, configured)
}

func TestExpectedDailyMinutes_ZeroSpanFallsBack(t *testing.T) {
	t.Parallel()

	s := &shift.Shift{StartClock: "08:00", EndClock: "08:00"}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.False(t, configured)
}

func TestExpectedDailyMinutes_UnreadableClockFallsBack(t *testing.T) {
	t.Parallel()

	s := &shift.Shift{StartClock: "junk", EndClock: "17:00"}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.False(t, configured)
}

func TestExpectedDailyMinutes_UnreadableBreakCountsAsNone(t *testing.T) {
	t.Parallel()

	s := &shift.Shift{StartClock: "08:00", EndClock: "16:00", BreakClock: strPtr("??")}

	minutes, configured := ExpectedDailyMinutes(s, testCfg)

	assert.Equal(t, 480, minutes)
	assert.True(t, configured)
}

func TestExpectedDailyMinutes_RespectsConfiguredDefault(t *testing.T) {
	t.Parallel()

	cfg := reconcile.Config{ToleranceMinutes: 1, DefaultDailyMinutes: 360}

	minutes, configured := ExpectedDailyMinutes(nil, cfg)

	assert.Equal(t, 360, minutes)
	assert.False(t, configured)
}
