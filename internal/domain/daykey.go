package domain

import "time"

// FormatDayKey formats a date's local calendar fields as YYYY-MM-DD.
// No timezone conversion is performed: the ledger treats dates as naive calendar days.
func FormatDayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ParseDayKey is the inverse of FormatDayKey: it reconstructs local midnight of the
// calendar day. Used for display and range reconstruction only; day-key string
// equality stays authoritative for comparisons.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyFormat, key, time.Local)
}

// SameDay returns true if both instants fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// truncateToDay обнуляет время, оставляя только календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
