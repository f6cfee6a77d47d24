package punch

import (
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Value      string `json:"value"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// The value itself is deliberately not validated beyond emptiness.
	// Terminals send heterogeneous shapes; the engine decides later what a
	// slot means, and a slot it cannot read simply contributes nothing.
	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPunchesRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ListPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
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

type DaySlotsResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}
