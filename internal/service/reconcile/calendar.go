package reconcile

import "time"

// dateOnly strips the clock portion so day arithmetic cannot drift.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDays returns the ordered Monday-to-Friday dates in
// [max(periodStart, hireDate), periodEnd]. An employee hired after the
// period end gets an empty calendar, which is a valid outcome rather than
// an error. Days outside this calendar are never penalized as absences.
func BusinessDays(periodStart, periodEnd, hireDate time.Time) []time.Time {
	start := dateOnly(periodStart)
	end := dateOnly(periodEnd)
	hire := dateOnly(hireDate)

	if hire.After(start) {
		start = hire
	}
	if start.After(end) {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// effectiveStart is the period start advanced to the hire date when the
// employee joined mid-period.
func effectiveStart(periodStart, hireDate time.Time) time.Time {
	start := dateOnly(periodStart)
	hire := dateOnly(hireDate)
	if hire.After(start) {
		return hire
	}
	return start
}
