package reconcile

import (
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
)

// Config carries the tunable values of the reconciliation computation.
// They are passed in explicitly so two calls with the same inputs and the
// same Config always produce the same output.
type Config struct {
	// ToleranceMinutes is the epsilon under which a day (and, divided by
	// 60, a period balance) counts as on-time.
	ToleranceMinutes int
	// DefaultDailyMinutes is the expected day length applied when an
	// employee has no shift assigned or the shift resolves to a
	// non-positive span. Results produced through this fallback are marked
	// as unconfigured.
	DefaultDailyMinutes int
}

type BalanceReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HasPeriod reports whether both period bounds were supplied. Without both
// the report is an explicit empty result, mirroring the UI rule of showing
// no data until a full period is chosen.
func (r *BalanceReportRequest) HasPeriod() bool {
	return !validator.IsEmpty(r.StartDate) && !validator.IsEmpty(r.EndDate)
}

// Validate checks supplied bounds for shape and order. Absent bounds are
// not an error; HasPeriod covers that case.
func (r *BalanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	startOK, endOK := true, true

	if !validator.IsEmpty(r.StartDate) {
		if d, ok := validator.IsValidDate(r.StartDate); ok {
			start = d
		} else {
			startOK = false
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.EndDate) {
		if d, ok := validator.IsValidDate(r.EndDate); ok {
			end = d
		} else {
			endOK = false
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.HasPeriod() && startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayClass buckets one business day of one employee.
type DayClass string

const (
	DayOnTime    DayClass = "on_time"
	DayOvertime  DayClass = "overtime"
	DayShortfall DayClass = "shortfall"
	// DayAbsence means no punch data existed for the day at all.
	DayAbsence DayClass = "absence"
	// DayUnreliable means punches existed but none of them paired into a
	// valid interval. It aggregates into the absence bucket by policy but
	// stays visible as its own classification.
	DayUnreliable DayClass = "unreliable"
)

// DailyOutcome is the classified result of one business day.
// At most one of OvertimeMinutes and ShortfallMinutes is non-zero.
type DailyOutcome struct {
	Date             time.Time
	Class            DayClass
	WorkedMinutes    int
	ExpectedMinutes  int
	OvertimeMinutes  int
	ShortfallMinutes int
	AbsenceMinutes   int
}

// PeriodStatus tags a period balance.
type PeriodStatus string

const (
	StatusPositive PeriodStatus = "positive"
	StatusNeutral  PeriodStatus = "neutral"
	StatusNegative PeriodStatus = "negative"
)

// PeriodResult is the aggregated outcome for one employee over the
// effective period. PeriodStart is the requested start advanced to the hire
// date when the employee was hired mid-period.
type PeriodResult struct {
	EmployeeID       string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	WorkedMinutes    int
	OvertimeMinutes  int
	ShortfallMinutes int
	AbsenceMinutes   int
	ExpectedMinutes  int
	BalanceHours     float64
	Status           PeriodStatus
	WorkedDays       int
	AbsentDays       int
	UnreliableDays   int
	// ShiftConfigured is false when expected minutes came from the
	// configured default instead of an assigned shift.
	ShiftConfigured bool
	Days            []DailyOutcome
}

// NotAvailable marks metadata the employee master could not supply.
const NotAvailable = "n/a"

type BalanceReport struct {
	PeriodStart string             `json:"period_start"`
	PeriodEnd   string             `json:"period_end"`
	GeneratedAt string             `json:"generated_at"`
	Rows        []BalanceReportRow `json:"rows"`
}

type BalanceReportRow struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	RegistrationCode string `json:"registration_code"`
	CompanyName      string `json:"company_name"`
	CostCenterName   string `json:"cost_center_name"`
	ShiftName        string `json:"shift_name"`
	PhotoURL         string `json:"photo_url"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	WorkedMinutes    int     `json:"worked_minutes"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	ShortfallMinutes int     `json:"shortfall_minutes"`
	AbsenceMinutes   int     `json:"absence_minutes"`
	ExpectedMinutes  int     `json:"expected_minutes"`
	BalanceHours     float64 `json:"balance_hours"`
	Status           string  `json:"status"`
	WorkedDays       int     `json:"worked_days"`
	AbsentDays       int     `json:"absent_days"`
	UnreliableDays   int     `json:"unreliable_days"`
	ShiftConfigured  bool    `json:"shift_configured"`

	Days []DailyOutcomeRow `json:"days"`
}

type DailyOutcomeRow struct {
	Date             string `json:"date"`
	Class            string `json:"class"`
	WorkedMinutes    int    `json:"worked_minutes"`
	ExpectedMinutes  int    `json:"expected_minutes"`
	OvertimeMinutes  int    `json:"overtime_minutes"`
	ShortfallMinutes int    `json:"shortfall_minutes"`
	AbsenceMinutes   int    `json:"absence_minutes"`
}
