package domain

// Time format constants
const (
	DayKeyFormat = "2006-01-02" // YYYY-MM-DD
	MonthFormat  = "2006-01"    // YYYY-MM
)

// Business validation constants
const (
	// MaxRangeDays ограничивает длину диапазона при разворачивании в day-keys.
	// Реальные брони и блокировки укладываются в год с запасом.
	MaxRangeDays = 366

	MinBookingOccupancy = 1
	MaxOccupancy        = 50
)

// Kinds список допустимых типов аллокаций
// Используется для валидации входных данных
var Kinds = []AllocationKind{
	KindBooking,
	KindBlocked,
}
