package deallocate_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

// Request модель запроса на освобождение диапазона
type Request struct {
	Range domain.DateRange // Полуинтервал [start, end)
}

// Response модель ответа
type Response struct {
	RangeStart  string // YYYY-MM-DD
	RangeEnd    string // YYYY-MM-DD (исключительно)
	DeletedDays int64  // Сколько дней реально было занято и удалено
}

// UseCase use case освобождения диапазона дат
// Используется при отмене брони и снятии блокировки; весь диапазон
// удаляется целиком, частичная правка дней не поддерживается
type UseCase struct {
	allocationRepo AllocationRepository
	publisher      EventPublisher
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(allocationRepo AllocationRepository, publisher EventPublisher, logger Logger) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute выполняет use case освобождения диапазона
// Удаление несуществующих дней - no-op, операция идемпотентна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeallocateRange: range=%s", req.Range)

	if err := req.Range.Validate(); err != nil {
		uc.logger.Warn("DeallocateRange: range validation failed: %v", err)
		if errors.Is(err, domain.ErrRangeTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return nil, fmt.Errorf("%w: range must cover at least one day", ErrInvalidRange)
	}

	deleted, err := uc.allocationRepo.DeleteRange(ctx, req.Range)
	if err != nil {
		uc.logger.Error("DeallocateRange: failed to delete range=%s: %v", req.Range, err)
		return nil, fmt.Errorf("%w: failed to delete range: %v", ErrInternal, err)
	}

	uc.logger.Info("DeallocateRange: released %d of %d days in range=%s",
		deleted, req.Range.Nights(), req.Range)

	event := events.AllocationEvent{
		Type:       events.TypeRangeDeallocated,
		RangeStart: domain.FormatDayKey(req.Range.Start),
		RangeEnd:   domain.FormatDayKey(req.Range.End),
		Days:       int(deleted),
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("DeallocateRange: failed to publish event: %v", err)
	}

	return &Response{
		RangeStart:  domain.FormatDayKey(req.Range.Start),
		RangeEnd:    domain.FormatDayKey(req.Range.End),
		DeletedDays: deleted,
	}, nil
}
