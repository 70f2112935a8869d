package allocate_range

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	allocateRange "github.com/m04kA/SMC-CalendarService/internal/usecase/allocate_range"
)

// AllocateRangeRequest HTTP request model
type AllocateRangeRequest struct {
	OwnerID        *string `json:"ownerId,omitempty"`
	RangeStart     string  `json:"rangeStart"` // "2025-06-28"
	RangeEnd       string  `json:"rangeEnd"`   // "2025-07-02", исключительно
	OccupancyCount int     `json:"occupancyCount"`
	Kind           string  `json:"kind"` // booking | blocked
}

// AllocationSummaryResponse HTTP response model
type AllocationSummaryResponse struct {
	OwnerID        *string  `json:"ownerId"`
	RangeStart     string   `json:"rangeStart"`
	RangeEnd       string   `json:"rangeEnd"`
	Days           []string `json:"days"`
	OccupancyCount int      `json:"occupancyCount"`
	Kind           string   `json:"kind"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AllocateRangeRequest) ToUseCaseRequest() (*allocateRange.Request, error) {
	start, err := domain.ParseDayKey(r.RangeStart)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDayKey(r.RangeEnd)
	if err != nil {
		return nil, err
	}

	return &allocateRange.Request{
		OwnerID:        r.OwnerID,
		Range:          domain.NewDateRange(start, end),
		OccupancyCount: r.OccupancyCount,
		Kind:           domain.AllocationKind(r.Kind),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateRange.Response) *AllocationSummaryResponse {
	return &AllocationSummaryResponse{
		OwnerID:        resp.OwnerID,
		RangeStart:     resp.RangeStart,
		RangeEnd:       resp.RangeEnd,
		Days:           resp.Days,
		OccupancyCount: resp.OccupancyCount,
		Kind:           string(resp.Kind),
	}
}
