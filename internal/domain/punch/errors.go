package punch

import "errors"

var (
	ErrDayNotFound = errors.New("no punch data for that employee and date")
	ErrDayComplete = errors.New("all punch slots for the day are already taken")
	ErrEmptyValue  = errors.New("punch value must not be empty")
)
