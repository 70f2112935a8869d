package replace_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

// UseCase use case переноса диапазона на новые даты
// Удаление старого диапазона, conflict scan и запись нового выполняются
// в одной сериализуемой транзакции: дни старой брони освобождаются и
// занимаются новые атомарно (на postgres-бэкенде; mongo-адаптер
// транзакционен в рамках каждого батча)
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

// Execute выполняет use case переноса диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceRange: old=%s, new=%s, kind=%s", req.OldRange, req.NewRange, req.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReplaceRange: validation failed: %v", err)
		return nil, err
	}

	newDays := req.NewRange.Days()

	// 2. Удаление старого диапазона и запись нового в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Освобождаем старый диапазон целиком
		deleted, err := uc.allocationRepo.DeleteRange(txCtx, req.OldRange)
		if err != nil {
			uc.logger.Error("ReplaceRange: failed to delete old range=%s: %v", req.OldRange, err)
			return fmt.Errorf("%w: failed to delete old range: %v", ErrInternal, err)
		}
		uc.logger.Info("ReplaceRange: released %d days of old range=%s", deleted, req.OldRange)

		// 2.2. Conflict scan нового диапазона с блокировкой строк
		// Дни владельца уже освобождены выше, остались только чужие
		held, err := uc.allocationRepo.GetByDays(txCtx, newDays)
		if err != nil {
			uc.logger.Error("ReplaceRange: failed to get allocations: %v", err)
			return fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
		}

		conflicts := filterConflicts(held, req.OwnerID)
		if len(conflicts) > 0 {
			uc.logger.Warn("ReplaceRange: new range=%s has %d conflicting days, first=%s",
				req.NewRange, len(conflicts), conflicts[0].DayKey)
			return ErrRangeConflict
		}

		// 2.3. Записываем новый диапазон целиком
		if err := uc.allocationRepo.CreateRange(txCtx, domain.RangeAllocation{
			OwnerID:        req.OwnerID,
			Range:          req.NewRange,
			OccupancyCount: req.OccupancyCount,
			Kind:           req.Kind,
		}); err != nil {
			uc.logger.Error("ReplaceRange: failed to create new range=%s: %v", req.NewRange, err)
			return fmt.Errorf("%w: failed to create new range: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReplaceRange: successfully moved range %s -> %s", req.OldRange, req.NewRange)

	// 3. Публикуем событие; ошибка публикации не откатывает запись
	event := events.AllocationEvent{
		Type:       events.TypeRangeReplaced,
		OwnerID:    req.OwnerID,
		RangeStart: domain.FormatDayKey(req.NewRange.Start),
		RangeEnd:   domain.FormatDayKey(req.NewRange.End),
		Days:       len(newDays),
		Kind:       string(req.Kind),
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("ReplaceRange: failed to publish event: %v", err)
	}

	return &Response{
		OwnerID:        req.OwnerID,
		RangeStart:     domain.FormatDayKey(req.NewRange.Start),
		RangeEnd:       domain.FormatDayKey(req.NewRange.End),
		Days:           newDays,
		OccupancyCount: req.OccupancyCount,
		Kind:           req.Kind,
	}, nil
}

// validateRequest валидирует входные данные запроса
// Правила по типам совпадают с allocate_range
func validateRequest(req *Request) error {
	if _, ok := domain.ParseAllocationKind(string(req.Kind)); !ok {
		return fmt.Errorf("%w: unknown allocation kind %q", ErrInvalidInput, req.Kind)
	}

	for _, rng := range []domain.DateRange{req.OldRange, req.NewRange} {
		if err := rng.Validate(); err != nil {
			if errors.Is(err, domain.ErrRangeTooLong) {
				return fmt.Errorf("%w: %v", ErrInvalidRange, err)
			}
			return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRange)
		}
	}

	switch req.Kind {
	case domain.KindBooking:
		if req.OwnerID == nil || *req.OwnerID == "" {
			return fmt.Errorf("%w: ownerId is required for booking allocations", ErrInvalidInput)
		}
		if req.OccupancyCount < domain.MinBookingOccupancy {
			return fmt.Errorf("%w: occupancyCount must be at least %d for bookings",
				ErrInvalidInput, domain.MinBookingOccupancy)
		}
		if req.OccupancyCount > domain.MaxOccupancy {
			return fmt.Errorf("%w: occupancyCount must not exceed %d", ErrInvalidInput, domain.MaxOccupancy)
		}

	case domain.KindBlocked:
		if req.OwnerID != nil {
			return fmt.Errorf("%w: ownerId must be empty for blocked allocations", ErrInvalidInput)
		}
		if req.OccupancyCount != 0 {
			return fmt.Errorf("%w: occupancyCount must be 0 for blocked allocations", ErrInvalidInput)
		}
	}

	return nil
}

// filterConflicts оставляет аллокации, занятые другим владельцем
func filterConflicts(allocations []*domain.Allocation, ownerID *string) []*domain.Allocation {
	conflicts := make([]*domain.Allocation, 0)

	for _, alloc := range allocations {
		if ownerID != nil && alloc.HeldBy(*ownerID) {
			continue
		}
		conflicts = append(conflicts, alloc)
	}

	return conflicts
}
