package deallocate_range

import (
	"context"

	deallocateRange "github.com/m04kA/SMC-CalendarService/internal/usecase/deallocate_range"
)

type DeallocateRangeUseCase interface {
	Execute(ctx context.Context, req *deallocateRange.Request) (*deallocateRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
