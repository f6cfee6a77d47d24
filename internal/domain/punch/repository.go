package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, day DaySlots) (DaySlots, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (DaySlots, error)
	// UpdateSlots replaces the slot values of an existing day row.
	UpdateSlots(ctx context.Context, id string, slots []string, companyID string) error
	// ListByPeriod returns every day row of the company whose date falls in
	// [start, end], ordered by employee then date.
	ListByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]DaySlots, error)
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]DaySlots, error)
}
