package allocate_range

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	CreateRange(ctx context.Context, alloc domain.RangeAllocation) error
	GetByDays(ctx context.Context, dayKeys []string) ([]*domain.Allocation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
