package punch

import "time"

// MaxSlots is the number of punch values one day row can hold.
const MaxSlots = 8

// DaySlots is one calendar day of raw punch values for one employee.
// Slots are kept in registration order, which is not necessarily
// chronological, and are stored exactly as the clock terminal sent them.
// Interpretation happens in the reconciliation engine only.
type DaySlots struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Date       time.Time
	Slots      []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
