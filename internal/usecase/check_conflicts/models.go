package check_conflicts

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// Request модель запроса на проверку конфликтов
type Request struct {
	Range          domain.DateRange // Проверяемый диапазон [start, end)
	ExcludeOwnerID *string          // Владелец, чьи дни не считаются конфликтом (опционально)
}

// Response модель ответа с найденными конфликтами
type Response struct {
	HasConflict bool                 // true, если занят хотя бы один день диапазона
	Conflicts   []*domain.Allocation // Занятые дни в хронологическом порядке
}
