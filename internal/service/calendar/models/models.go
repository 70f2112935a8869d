package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Статусы дня в проекции месяца
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
	StatusBlocked   = "blocked"
)

// AllocationView представление аллокации для чтения
type AllocationView struct {
	DayKey         string
	OwnerID        *string
	RangeStart     string // YYYY-MM-DD
	RangeEnd       string // YYYY-MM-DD (исключительно)
	OccupancyCount int
	Kind           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DayView один день проекции месяца
// Для свободных дней Allocation == nil, OccupancyCount == 0
type DayView struct {
	Date           string // YYYY-MM-DD
	Status         string
	OccupancyCount int
	Allocation     *AllocationView
}

// MonthView проекция месяца: сетка по всем дням плюс список аллокаций
type MonthView struct {
	Year        int
	Month       int // 1-12
	Days        []DayView
	Allocations []*AllocationView
}

// FromDomain конвертирует доменную аллокацию в представление
func FromDomain(alloc *domain.Allocation) *AllocationView {
	if alloc == nil {
		return nil
	}

	return &AllocationView{
		DayKey:         alloc.DayKey,
		OwnerID:        alloc.OwnerID,
		RangeStart:     domain.FormatDayKey(alloc.RangeStart),
		RangeEnd:       domain.FormatDayKey(alloc.RangeEnd),
		OccupancyCount: alloc.OccupancyCount,
		Kind:           string(alloc.Kind),
		CreatedAt:      alloc.CreatedAt,
		UpdatedAt:      alloc.UpdatedAt,
	}
}

// StatusFor возвращает статус дня по типу аллокации
func StatusFor(alloc *domain.Allocation) string {
	if alloc == nil {
		return StatusAvailable
	}
	if alloc.IsBlocked() {
		return StatusBlocked
	}
	return StatusBooked
}
