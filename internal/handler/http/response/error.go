package response

import (
	"errors"
	"net/http"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/auth"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/employee"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/punch"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/user"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRegistrationCodeExists):
		Conflict(w, "Registration code already exists")
	case errors.Is(err, employee.ErrEmployeeHasOpenPunchDay):
		Conflict(w, "Employee has punch data and cannot be deleted")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")

	// Punch domain errors
	case errors.Is(err, punch.ErrDayNotFound):
		NotFound(w, "No punch data for that employee and date")
	case errors.Is(err, punch.ErrDayComplete):
		Conflict(w, "All punch slots for the day are already taken")
	case errors.Is(err, punch.ErrEmptyValue):
		BadRequest(w, "Punch value must not be empty", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
