package replace_range

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// Request модель запроса на перенос диапазона
// Старый диапазон удаляется целиком, новый записывается целиком -
// дни никогда не правятся частично (денормализованные границы диапазона
// на каждом дне обязаны оставаться согласованными)
type Request struct {
	OwnerID        *string               // ID брони, nil для переноса блокировки
	OldRange       domain.DateRange      // Текущий диапазон
	NewRange       domain.DateRange      // Новый диапазон
	OccupancyCount int                   // Количество гостей (0 для блокировки)
	Kind           domain.AllocationKind // booking или blocked
}

// Response модель ответа с перенесённым диапазоном
type Response struct {
	OwnerID        *string
	RangeStart     string   // Новый YYYY-MM-DD
	RangeEnd       string   // Новый YYYY-MM-DD (исключительно)
	Days           []string // Записанные day-keys нового диапазона
	OccupancyCount int
	Kind           domain.AllocationKind
}
