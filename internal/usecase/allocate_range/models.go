package allocate_range

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// Request модель запроса на аллокацию диапазона
type Request struct {
	OwnerID        *string               // ID брони/клиента, nil для административной блокировки
	Range          domain.DateRange      // Полуинтервал [checkIn, checkOut)
	OccupancyCount int                   // Количество гостей (0 для блокировки)
	Kind           domain.AllocationKind // booking или blocked
}

// Response модель ответа с записанным диапазоном
type Response struct {
	OwnerID        *string
	RangeStart     string   // YYYY-MM-DD
	RangeEnd       string   // YYYY-MM-DD (исключительно)
	Days           []string // Записанные day-keys в хронологическом порядке
	OccupancyCount int
	Kind           domain.AllocationKind
}
