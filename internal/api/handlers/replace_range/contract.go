package replace_range

import (
	"context"

	replaceRange "github.com/m04kA/SMC-CalendarService/internal/usecase/replace_range"
)

type ReplaceRangeUseCase interface {
	Execute(ctx context.Context, req *replaceRange.Request) (*replaceRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
