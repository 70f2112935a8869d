package events

import "time"

// Типы событий календаря
const (
	TypeRangeAllocated   = "calendar.range.allocated"
	TypeRangeDeallocated = "calendar.range.deallocated"
	TypeRangeReplaced    = "calendar.range.replaced"
)

// AllocationEvent событие изменения реестра аллокаций
// Публикуется после успешной мутации, ключ партиционирования - rangeStart
type AllocationEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OwnerID    *string   `json:"ownerId"`
	RangeStart string    `json:"rangeStart"` // YYYY-MM-DD
	RangeEnd   string    `json:"rangeEnd"`   // YYYY-MM-DD
	Days       int       `json:"days"`
	Kind       string    `json:"kind,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
