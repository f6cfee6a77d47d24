package reconcile

import (
	"testing"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_MidPeriodHireScenario(t *testing.T) {
	t.Parallel()

	// Period Mon 2024-01-01 .. Fri 2024-01-05, hired Wednesday, day shift
	// 08:00-17:00 with a one hour break (480 expected minutes). Valid
	// punches on the 3rd only; the 4th and 5th have no data.
	shiftID := "day"
	in := Inputs{
		PeriodStart: date(2024, time.January, 1),
		PeriodEnd:   date(2024, time.January, 5),
		Employees: []EmployeeContext{{
			ID:       "emp-1",
			HireDate: date(2024, time.January, 3),
			ShiftID:  &shiftID,
		}},
		ShiftsByID: map[string]shift.Shift{
			"day": {ID: "day", StartClock: "08:00", EndClock: "17:00", BreakMinutes: intPtr(60)},
		},
		Punches: map[string]map[string][]string{
			"emp-1": {
				"2024-01-03": {"08:00", "17:30"},
			},
		},
	}

	results := Compute(in, testCfg)

	require.Len(t, results, 1)
	res := results[0]

	assert.Equal(t, "emp-1", res.EmployeeID)
	assert.Equal(t, date(2024, time.January, 3), res.PeriodStart)
	assert.Equal(t, date(2024, time.January, 5), res.PeriodEnd)
	assert.True(t, res.ShiftConfigured)

	require.Len(t, res.Days, 3)
	assert.Equal(t, reconcile.DayOvertime, res.Days[0].Class)
	assert.Equal(t, 570, res.Days[0].WorkedMinutes)
	assert.Equal(t, 90, res.Days[0].OvertimeMinutes)
	assert.Equal(t, reconcile.DayAbsence, res.Days[1].Class)
	assert.Equal(t, reconcile.DayAbsence, res.Days[2].Class)

	assert.Equal(t, 570, res.WorkedMinutes)
	assert.Equal(t, 90, res.OvertimeMinutes)
	assert.Equal(t, 0, res.ShortfallMinutes)
	assert.Equal(t, 960, res.AbsenceMinutes)
	assert.Equal(t, 1440, res.ExpectedMinutes)
	assert.Equal(t, 1, res.WorkedDays)
	assert.Equal(t, 2, res.AbsentDays)

	// (570 + 90 - 0 - 1440) / 60 = -13h.
	assert.InDelta(t, -13.0, res.BalanceHours, 1e-9)
	assert.Equal(t, reconcile.StatusNegative, res.Status)
}

func TestCompute_HiredAfterPeriodEnd(t *testing.T) {
	t.Parallel()

	in := Inputs{
		PeriodStart: date(2024, time.January, 1),
		PeriodEnd:   date(2024, time.January, 5),
		Employees: []EmployeeContext{{
			ID:       "emp-late",
			HireDate: date(2024, time.March, 1),
		}},
	}

	results := Compute(in, testCfg)

	require.Len(t, results, 1)
	res := results[0]
	assert.Zero(t, res.WorkedMinutes)
	assert.Zero(t, res.ExpectedMinutes)
	assert.Zero(t, res.AbsenceMinutes)
	assert.Empty(t, res.Days)
	assert.Equal(t, reconcile.StatusNeutral, res.Status)
}

func TestCompute_ExactBalanceIsNeutral(t *testing.T) {
	t.Parallel()

	shiftID := "day"
	in := Inputs{
		// A single Wednesday.
		PeriodStart: date(2024, time.January, 3),
		PeriodEnd:   date(2024, time.January, 3),
		Employees: []EmployeeContext{{
			ID:       "emp-1",
			HireDate: date(2020, time.January, 1),
			ShiftID:  &shiftID,
		}},
		ShiftsByID: map[string]shift.Shift{
			"day": {ID: "day", StartClock: "08:00", EndClock: "17:00", BreakMinutes: intPtr(60)},
		},
		Punches: map[string]map[string][]string{
			"emp-1": {"2024-01-03": {"08:00", "16:00"}},
		},
	}

	results := Compute(in, testCfg)

	require.Len(t, results, 1)
	res := results[0]
	assert.Equal(t, reconcile.StatusNeutral, res.Status)
	assert.Zero(t, res.OvertimeMinutes)
	assert.Zero(t, res.ShortfallMinutes)
	assert.Zero(t, res.BalanceHours)
}

func TestCompute_UnconfiguredShiftUsesDefaultAndIsFlagged(t *testing.T) {
	t.Parallel()

	in := Inputs{
		PeriodStart: date(2024, time.January, 3),
		PeriodEnd:   date(2024, time.January, 3),
		Employees: []EmployeeContext{{
			ID:       "emp-1",
			HireDate: date(2020, time.January, 1),
		}},
		Punches: map[string]map[string][]string{
			"emp-1": {"2024-01-03": {"08:00", "16:00"}},
		},
	}

	results := Compute(in, testCfg)

	require.Len(t, results, 1)
	res := results[0]
	assert.False(t, res.ShiftConfigured)
	assert.Equal(t, 480, res.ExpectedMinutes)
	assert.Equal(t, 480, res.WorkedMinutes)
}

func TestCompute_UnreliableDayCountsSeparately(t *testing.T) {
	t.Parallel()

	in := Inputs{
		PeriodStart: date(2024, time.January, 3),
		PeriodEnd:   date(2024, time.January, 4),
		Employees: []EmployeeContext{{
			ID:       "emp-1",
			HireDate: date(2020, time.January, 1),
		}},
		Punches: map[string]map[string][]string{
			"emp-1": {
				// Only one readable punch: no interval can form.
				"2024-01-03": {"08:00", "garbage"},
			},
		},
	}

	results := Compute(in, testCfg)

	require.Len(t, results, 1)
	res := results[0]
	assert.Equal(t, 1, res.UnreliableDays)
	assert.Equal(t, 1, res.AbsentDays)
	// Both days still charge expected minutes into the absence bucket.
	assert.Equal(t, 960, res.AbsenceMinutes)
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	shiftID := "night"
	in := Inputs{
		PeriodStart: date(2024, time.January, 1),
		PeriodEnd:   date(2024, time.January, 31),
		Employees: []EmployeeContext{
			{ID: "emp-1", HireDate: date(2023, time.May, 1), ShiftID: &shiftID},
			{ID: "emp-2", HireDate: date(2024, time.January, 10)},
		},
		ShiftsByID: map[string]shift.Shift{
			"night": {ID: "night", StartClock: "22:00", EndClock: "06:00"},
		},
		Punches: map[string]map[string][]string{
			"emp-1": {
				"2024-01-02": {"2200", "0600"},
				"2024-01-03": {"22:00", "23:00", "23:30"},
			},
			"emp-2": {
				"2024-01-15": {"08:00", "12:00", "13:00", "17:00"},
			},
		},
	}

	first := Compute(in, testCfg)
	second := Compute(in, testCfg)

	// Pure function: identical inputs, identical outputs, stable order.
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "emp-1", first[0].EmployeeID)
	assert.Equal(t, "emp-2", first[1].EmployeeID)
}

func TestCompute_EmptyEmployeeList(t *testing.T) {
	t.Parallel()

	results := Compute(Inputs{
		PeriodStart: date(2024, time.January, 1),
		PeriodEnd:   date(2024, time.January, 5),
	}, testCfg)

	assert.Empty(t, results)
}
