package shift

import (
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name         string  `json:"name"`
	StartClock   string  `json:"start_clock"`
	EndClock     string  `json:"end_clock"`
	BreakMinutes *int    `json:"break_minutes"`
	BreakClock   *string `json:"break_clock"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.StartClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_clock",
			Message: "start_clock must be in HH:MM format",
		})
	}

	if !validator.IsValidClock(r.EndClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_clock",
			Message: "end_clock must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.BreakClock != nil && !validator.IsValidClock(*r.BreakClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_clock",
			Message: "break_clock must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name"`
	StartClock   *string `json:"start_clock"`
	EndClock     *string `json:"end_clock"`
	BreakMinutes *int    `json:"break_minutes"`
	BreakClock   *string `json:"break_clock"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.StartClock != nil && !validator.IsValidClock(*r.StartClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_clock",
			Message: "start_clock must be in HH:MM format",
		})
	}

	if r.EndClock != nil && !validator.IsValidClock(*r.EndClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_clock",
			Message: "end_clock must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.BreakClock != nil && !validator.IsValidClock(*r.BreakClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_clock",
			Message: "break_clock must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	StartClock   string  `json:"start_clock"`
	EndClock     string  `json:"end_clock"`
	BreakMinutes *int    `json:"break_minutes"`
	BreakClock   *string `json:"break_clock"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
