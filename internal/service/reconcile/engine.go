package reconcile

import (
	"sync"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
)

const dateKeyLayout = "2006-01-02"

// EmployeeContext is the slice of employee master data the computation
// needs; display metadata stays with the assembler.
type EmployeeContext struct {
	ID       string
	HireDate time.Time
	ShiftID  *string
}

// Inputs is everything Compute consumes. It is read-only to the engine;
// the caller fetches it once before the computation runs.
type Inputs struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Employees   []EmployeeContext
	ShiftsByID  map[string]shift.Shift
	// Punches maps employee id, then "YYYY-MM-DD", to the day's raw slot
	// values in registration order.
	Punches map[string]map[string][]string
}

// Compute reconciles every employee over the period. It is a pure function
// of its arguments: no clock, no I/O, no shared mutable state, so the
// per-employee work fans out across goroutines without locking. Results
// come back in input order.
func Compute(in Inputs, cfg reconcile.Config) []reconcile.PeriodResult {
	results := make([]reconcile.PeriodResult, len(in.Employees))

	var wg sync.WaitGroup
	for i, emp := range in.Employees {
		wg.Add(1)
		go func(i int, emp EmployeeContext) {
			defer wg.Done()
			results[i] = reconcileEmployee(emp, in, cfg)
		}(i, emp)
	}
	wg.Wait()

	return results
}

func reconcileEmployee(emp EmployeeContext, in Inputs, cfg reconcile.Config) reconcile.PeriodResult {
	var assigned *shift.Shift
	if emp.ShiftID != nil {
		if s, ok := in.ShiftsByID[*emp.ShiftID]; ok {
			assigned = &s
		}
	}
	expected, configured := ExpectedDailyMinutes(assigned, cfg)

	result := reconcile.PeriodResult{
		EmployeeID:      emp.ID,
		PeriodStart:     effectiveStart(in.PeriodStart, emp.HireDate),
		PeriodEnd:       dateOnly(in.PeriodEnd),
		Status:          reconcile.StatusNeutral,
		ShiftConfigured: configured,
	}

	days := BusinessDays(in.PeriodStart, in.PeriodEnd, emp.HireDate)
	if len(days) == 0 {
		// Hired after the period (or an empty window): nothing to
		// reconcile, and never an absence penalty.
		return result
	}

	punchDays := in.Punches[emp.ID]
	for _, day := range days {
		slots := punchDays[day.Format(dateKeyLayout)]
		worked, hadValid := WorkedMinutes(NormalizeSlots(slots))
		outcome := ClassifyDay(day, worked, expected, len(slots) > 0, hadValid, cfg.ToleranceMinutes)

		result.Days = append(result.Days, outcome)
		result.WorkedMinutes += outcome.WorkedMinutes
		result.OvertimeMinutes += outcome.OvertimeMinutes
		result.ShortfallMinutes += outcome.ShortfallMinutes
		result.AbsenceMinutes += outcome.AbsenceMinutes
		result.ExpectedMinutes += outcome.ExpectedMinutes

		switch outcome.Class {
		case reconcile.DayAbsence:
			result.AbsentDays++
		case reconcile.DayUnreliable:
			result.UnreliableDays++
		default:
			result.WorkedDays++
		}
	}

	balanceMinutes := result.WorkedMinutes + result.OvertimeMinutes -
		result.ShortfallMinutes - result.ExpectedMinutes
	result.BalanceHours = float64(balanceMinutes) / 60.0

	toleranceHours := float64(cfg.ToleranceMinutes) / 60.0
	switch {
	case result.BalanceHours > toleranceHours:
		result.Status = reconcile.StatusPositive
	case result.BalanceHours < -toleranceHours:
		result.Status = reconcile.StatusNegative
	}

	return result
}
