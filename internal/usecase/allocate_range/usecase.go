package allocate_range

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

// UseCase use case аллокации диапазона дат
// Проверка конфликтов и батч-запись выполняются в одной сериализуемой
// транзакции: конкурентные пересекающиеся запросы падают, а не
// перезаписывают друг друга молча
type UseCase struct {
	allocationRepo AllocationRepository
	txManager      TransactionManager
	publisher      EventPublisher
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute выполняет use case аллокации диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateRange: range=%s, kind=%s, occupancy=%d",
		req.Range, req.Kind, req.OccupancyCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateRange: validation failed: %v", err)
		return nil, err
	}

	days := req.Range.Days()

	// 2. Conflict scan + запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем занятые дни диапазона с блокировкой строк (FOR UPDATE)
		held, err := uc.allocationRepo.GetByDays(txCtx, days)
		if err != nil {
			uc.logger.Error("AllocateRange: failed to get allocations: %v", err)
			return fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
		}

		// 2.2. Дни другого владельца - конфликт, запись не выполняется
		// Дни того же владельца легально перезаписываются (идемпотентный re-create)
		conflicts := filterConflicts(held, req.OwnerID)
		if len(conflicts) > 0 {
			uc.logger.Warn("AllocateRange: range=%s has %d conflicting days, first=%s",
				req.Range, len(conflicts), conflicts[0].DayKey)
			return ErrRangeConflict
		}

		// 2.3. Записываем одну аллокацию на каждый день диапазона одним батчем
		if err := uc.allocationRepo.CreateRange(txCtx, domain.RangeAllocation{
			OwnerID:        req.OwnerID,
			Range:          req.Range,
			OccupancyCount: req.OccupancyCount,
			Kind:           req.Kind,
		}); err != nil {
			uc.logger.Error("AllocateRange: failed to create range: %v", err)
			return fmt.Errorf("%w: failed to create range: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AllocateRange: successfully allocated %d days in range=%s", len(days), req.Range)

	// 3. Публикуем событие; ошибка публикации не откатывает запись
	uc.publishEvent(ctx, req, len(days))

	return &Response{
		OwnerID:        req.OwnerID,
		RangeStart:     domain.FormatDayKey(req.Range.Start),
		RangeEnd:       domain.FormatDayKey(req.Range.End),
		Days:           days,
		OccupancyCount: req.OccupancyCount,
		Kind:           req.Kind,
	}, nil
}

func (uc *UseCase) publishEvent(ctx context.Context, req *Request, days int) {
	event := events.AllocationEvent{
		Type:       events.TypeRangeAllocated,
		OwnerID:    req.OwnerID,
		RangeStart: domain.FormatDayKey(req.Range.Start),
		RangeEnd:   domain.FormatDayKey(req.Range.End),
		Days:       days,
		Kind:       string(req.Kind),
		OccurredAt: time.Now(),
	}

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("AllocateRange: failed to publish event: %v", err)
	}
}
