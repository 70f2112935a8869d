package check_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case проверки диапазона на конфликты
// Разворачивает диапазон в day-keys и собирает все существующие аллокации,
// принадлежащие другому владельцу
type UseCase struct {
	allocationRepo AllocationRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(allocationRepo AllocationRepository, logger Logger) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Execute выполняет проверку конфликтов
// Сама по себе проверка не блокирует дни: она транзакционно связывается с записью
// только внутри usecase allocate_range/replace_range
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: range=%s, excludeOwner=%s", req.Range, ownerForLog(req.ExcludeOwnerID))

	if err := req.Range.Validate(); err != nil {
		uc.logger.Warn("CheckConflicts: range validation failed: %v", err)
		if errors.Is(err, domain.ErrRangeTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return nil, fmt.Errorf("%w: range must cover at least one day", ErrInvalidRange)
	}

	allocations, err := uc.allocationRepo.GetByDays(ctx, req.Range.Days())
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get allocations for range=%s: %v", req.Range, err)
		return nil, fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
	}

	conflicts := FilterConflicts(allocations, req.ExcludeOwnerID)

	uc.logger.Info("CheckConflicts: range=%s, %d days held, %d conflicting",
		req.Range, len(allocations), len(conflicts))

	return &Response{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}, nil
}

// FilterConflicts оставляет аллокации, принадлежащие другому владельцу.
// Без excludeOwnerID конфликтом считается любой занятый день.
// Административные блокировки (owner = nil) конфликтуют всегда - даже с тем,
// кто запрашивает проверку для собственной брони.
func FilterConflicts(allocations []*domain.Allocation, excludeOwnerID *string) []*domain.Allocation {
	conflicts := make([]*domain.Allocation, 0)

	for _, alloc := range allocations {
		if excludeOwnerID != nil && alloc.HeldBy(*excludeOwnerID) {
			continue
		}
		conflicts = append(conflicts, alloc)
	}

	return conflicts
}

// ownerForLog форматирует опциональный owner id для логов
func ownerForLog(ownerID *string) string {
	if ownerID == nil {
		return "<none>"
	}
	return *ownerID
}
