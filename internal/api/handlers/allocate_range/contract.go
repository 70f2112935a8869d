package allocate_range

import (
	"context"

	allocateRange "github.com/m04kA/SMC-CalendarService/internal/usecase/allocate_range"
)

type AllocateRangeUseCase interface {
	Execute(ctx context.Context, req *allocateRange.Request) (*allocateRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
