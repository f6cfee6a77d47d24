package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrRegistrationCodeExists   = errors.New("registration code already exists")
	ErrEmployeeHasOpenPunchDay  = errors.New("employee has punch data and cannot be deleted")
	ErrHireDateAfterTermination = errors.New("hire date is after the termination date")
)
