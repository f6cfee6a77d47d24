package employee

import (
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	RegistrationCode string  `json:"registration_code"`
	FullName         string  `json:"full_name"`
	HireDate         string  `json:"hire_date"`
	ShiftID          *string `json:"shift_id"`
	CostCenterID     *string `json:"cost_center_id"`
	PhotoURL         *string `json:"photo_url"`
	BaseSalary       *string `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RegistrationCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_code",
			Message: "registration_code is required",
		})
	} else if !validator.IsValidRegistrationCode(r.RegistrationCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_code",
			Message: "registration_code must be 2-20 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	RegistrationCode *string `json:"registration_code"`
	FullName         *string `json:"full_name"`
	HireDate         *string `json:"hire_date"`
	ShiftID          *string `json:"shift_id"`
	CostCenterID     *string `json:"cost_center_id"`
	PhotoURL         *string `json:"photo_url"`
	BaseSalary       *string `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RegistrationCode != nil && !validator.IsValidRegistrationCode(*r.RegistrationCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_code",
			Message: "registration_code must be 2-20 uppercase letters, digits or dashes",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	RegistrationCode string  `json:"registration_code"`
	FullName         string  `json:"full_name"`
	HireDate         string  `json:"hire_date"`
	ShiftID          *string `json:"shift_id"`
	ShiftName        *string `json:"shift_name"`
	CostCenterID     *string `json:"cost_center_id"`
	CostCenterName   *string `json:"cost_center_name"`
	PhotoURL         *string `json:"photo_url"`
	BaseSalary       *string `json:"base_salary"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
