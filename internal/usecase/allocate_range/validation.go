package allocate_range

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Правила по типам:
// - booking: владелец обязателен, occupancyCount >= 1
// - blocked: владельца нет, occupancyCount = 0
func validateRequest(req *Request) error {
	if _, ok := domain.ParseAllocationKind(string(req.Kind)); !ok {
		return fmt.Errorf("%w: unknown allocation kind %q", ErrInvalidInput, req.Kind)
	}

	if err := req.Range.Validate(); err != nil {
		if errors.Is(err, domain.ErrRangeTooLong) {
			return fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRange)
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
// Блокировки (owner = nil) конфликтуют с любым запросом
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
