package deallocate_range

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	DeleteRange(ctx context.Context, rng domain.DateRange) (int64, error)
}

// EventPublisher интерфейс публикации событий календаря
type EventPublisher interface {
	Publish(ctx context.Context, event events.AllocationEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
