package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyRange возвращается для нулевого или перевёрнутого диапазона
	ErrEmptyRange = errors.New("domain: range must cover at least one day")

	// ErrRangeTooLong возвращается, когда диапазон превышает MaxRangeDays
	ErrRangeTooLong = errors.New("domain: range is too long")
)

// DateRange is a half-open check-in/check-out interval [Start, End) over calendar
// days. The End day itself is never allocated, which allows a same-day
// checkout/check-in turnover.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange строит диапазон, отбрасывая время у обеих границ
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
}

// Validate проверяет, что диапазон разворачивается хотя бы в один день
// и не превышает MaxRangeDays
func (r DateRange) Validate() error {
	nights := r.Nights()
	if nights < 1 {
		return ErrEmptyRange
	}
	if nights > MaxRangeDays {
		return fmt.Errorf("%w: %d days, max %d", ErrRangeTooLong, nights, MaxRangeDays)
	}
	return nil
}

// Nights returns the number of calendar days covered by the half-open interval
func (r DateRange) Nights() int {
	start := truncateToDay(r.Start)
	end := truncateToDay(r.End)

	nights := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		nights++
	}
	return nights
}

// Days enumerates the day-keys covered by [Start, End) in chronological order.
// The result is empty for zero-length or inverted ranges.
func (r DateRange) Days() []string {
	start := truncateToDay(r.Start)
	end := truncateToDay(r.End)

	days := make([]string, 0)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDayKey(d))
	}
	return days
}

// Overlaps returns true if the two half-open ranges share at least one day
func (r DateRange) Overlaps(other DateRange) bool {
	return truncateToDay(r.Start).Before(truncateToDay(other.End)) &&
		truncateToDay(other.Start).Before(truncateToDay(r.End))
}

// String возвращает диапазон в виде "[YYYY-MM-DD, YYYY-MM-DD)"
func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", FormatDayKey(r.Start), FormatDayKey(r.End))
}
