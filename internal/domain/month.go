package domain

import (
	"fmt"
	"time"
)

// MonthPrefix returns the YYYY-MM prefix shared by every day-key of the month.
// Day-keys sort lexicographically in chronological order, so the prefix doubles
// as a range-scan bound.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// MonthBounds returns the half-open day-key interval [first, next) covering the
// whole calendar month: "YYYY-MM-01" of the month and of the month after it.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)
	return FormatDayKey(first), FormatDayKey(next)
}

// DaysInMonth returns the number of calendar days in the month
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}
