package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	CompanyID        string
	RegistrationCode string
	FullName         string
	HireDate         time.Time
	ShiftID          *string
	CostCenterID     *string
	PhotoURL         *string
	BaseSalary       *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// DTO
	ShiftName      *string
	CostCenterName *string
	CompanyName    *string
}
