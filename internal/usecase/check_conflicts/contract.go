package check_conflicts

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	GetByDays(ctx context.Context, dayKeys []string) ([]*domain.Allocation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
