package engine

import "time"

// Actual/actual day counting per instalment: interest accrues on the real
// number of days in the due month over the real number of days in that
// month's calendar year. An 18-month schedule can straddle a leap day or
// a year boundary, so a fixed 30/360 approximation would drift.

// InstalmentDueDate returns the first day of the month that is n whole
// months after the calculation date's month. Instalment 1 is due on the
// first day of the following month.
func InstalmentDueDate(calculationDate time.Time, n int) time.Time {
	y, m, _ := calculationDate.Date()
	return time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, calculationDate.Location())
}

// DaysInMonth returns the number of calendar days in t's month (28-31).
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	// day 0 of the next month normalizes to this month's last day
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DaysInYear returns 366 when t falls in a Gregorian leap year, else 365.
func DaysInYear(t time.Time) int {
	y := t.Year()
	if y%4 != 0 {
		return 365
	}
	if y%100 != 0 {
		return 366
	}
	if y%400 == 0 {
		return 366
	}
	return 365
}
