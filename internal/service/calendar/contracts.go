package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	GetByDay(ctx context.Context, dayKey string) (*domain.Allocation, error)
	GetByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Allocation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
