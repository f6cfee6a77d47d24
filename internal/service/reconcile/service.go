package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/employee"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/punch"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type ReconcileServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	shift.ShiftRepository
	punch.PunchRepository
	cfg reconcile.Config
}

func NewReconcileService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	punchRepo punch.PunchRepository,
	cfg reconcile.Config,
) reconcile.ReconcileService {
	return &ReconcileServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
		PunchRepository:    punchRepo,
		cfg:                cfg,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ReconcileServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GenerateBalanceReport implements reconcile.ReconcileService.
// Everything I/O happens up front: the three input sets are fetched
// concurrently, then the pure computation runs and the rows are assembled.
func (s *ReconcileServiceImpl) GenerateBalanceReport(ctx context.Context, req reconcile.BalanceReportRequest) (reconcile.BalanceReport, error) {
	if err := req.Validate(); err != nil {
		return reconcile.BalanceReport{}, err
	}

	report := reconcile.BalanceReport{
		PeriodStart: req.StartDate,
		PeriodEnd:   req.EndDate,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        []reconcile.BalanceReportRow{},
	}

	// Without both bounds there is nothing to reconcile; an empty report
	// is the documented outcome, not an error.
	if !req.HasPeriod() {
		return report, nil
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return reconcile.BalanceReport{}, err
	}

	periodStart, _ := time.Parse(dateKeyLayout, req.StartDate)
	periodEnd, _ := time.Parse(dateKeyLayout, req.EndDate)

	var (
		employees  []employee.Employee
		shiftsByID map[string]shift.Shift
		punchDays  []punch.DaySlots
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.EmployeeRepository.List(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shiftsByID, err = s.ShiftRepository.MapByID(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to load shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		punchDays, err = s.PunchRepository.ListByPeriod(gctx, companyID, periodStart, periodEnd)
		if err != nil {
			return fmt.Errorf("failed to load punch data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return reconcile.BalanceReport{}, err
	}

	contexts := make([]EmployeeContext, 0, len(employees))
	for _, emp := range employees {
		contexts = append(contexts, EmployeeContext{
			ID:       emp.ID,
			HireDate: emp.HireDate,
			ShiftID:  emp.ShiftID,
		})
	}

	results := Compute(Inputs{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Employees:   contexts,
		ShiftsByID:  shiftsByID,
		Punches:     groupPunches(punchDays),
	}, s.cfg)

	for i, res := range results {
		report.Rows = append(report.Rows, assembleRow(employees[i], res))
	}

	return report, nil
}

// groupPunches shapes the flat day rows into the employee/date map the
// engine consumes.
func groupPunches(days []punch.DaySlots) map[string]map[string][]string {
	grouped := make(map[string]map[string][]string)
	for _, d := range days {
		byDate, ok := grouped[d.EmployeeID]
		if !ok {
			byDate = make(map[string][]string)
			grouped[d.EmployeeID] = byDate
		}
		byDate[d.Date.Format(dateKeyLayout)] = d.Slots
	}
	return grouped
}

// assembleRow merges the computed result with the employee's display
// metadata. It performs no computation; metadata the master data could not
// supply renders as an explicit marker instead of an empty string.
func assembleRow(emp employee.Employee, res reconcile.PeriodResult) reconcile.BalanceReportRow {
	days := make([]reconcile.DailyOutcomeRow, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, reconcile.DailyOutcomeRow{
			Date:             d.Date.Format(dateKeyLayout),
			Class:            string(d.Class),
			WorkedMinutes:    d.WorkedMinutes,
			ExpectedMinutes:  d.ExpectedMinutes,
			OvertimeMinutes:  d.OvertimeMinutes,
			ShortfallMinutes: d.ShortfallMinutes,
			AbsenceMinutes:   d.AbsenceMinutes,
		})
	}

	return reconcile.BalanceReportRow{
		EmployeeID:       emp.ID,
		EmployeeName:     orNotAvailable(&emp.FullName),
		RegistrationCode: orNotAvailable(&emp.RegistrationCode),
		CompanyName:      orNotAvailable(emp.CompanyName),
		CostCenterName:   orNotAvailable(emp.CostCenterName),
		ShiftName:        orNotAvailable(emp.ShiftName),
		PhotoURL:         orNotAvailable(emp.PhotoURL),
		PeriodStart:      res.PeriodStart.Format(dateKeyLayout),
		PeriodEnd:        res.PeriodEnd.Format(dateKeyLayout),
		WorkedMinutes:    res.WorkedMinutes,
		OvertimeMinutes:  res.OvertimeMinutes,
		ShortfallMinutes: res.ShortfallMinutes,
		AbsenceMinutes:   res.AbsenceMinutes,
		ExpectedMinutes:  res.ExpectedMinutes,
		BalanceHours:     res.BalanceHours,
		Status:           string(res.Status),
		WorkedDays:       res.WorkedDays,
		AbsentDays:       res.AbsentDays,
		UnreliableDays:   res.UnreliableDays,
		ShiftConfigured:  res.ShiftConfigured,
		Days:             days,
	}
}

func orNotAvailable(v *string) string {
	if v == nil || *v == "" {
		return reconcile.NotAvailable
	}
	return *v
}
