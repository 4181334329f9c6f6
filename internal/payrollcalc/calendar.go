package payrollcalc

import "time"

// ExpectedWorkingDays counts the days of the given month that fall on one of
// the first workingDaysPerWeek weekdays, Monday first. Five means Monday to
// Friday, six adds Saturday, seven counts every calendar day.
func ExpectedWorkingDays(year int, month time.Month, workingDaysPerWeek int) int {
	if workingDaysPerWeek <= 0 {
		return 0
	}
	if workingDaysPerWeek > 7 {
		workingDaysPerWeek = 7
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if isoWeekday(d.Weekday()) <= workingDaysPerWeek {
			days++
		}
	}
	return days
}

// Monday=1 .. Sunday=7
func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}
