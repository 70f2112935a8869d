package replace_range

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	replaceRange "github.com/m04kA/SMC-CalendarService/internal/usecase/replace_range"
)

// ReplaceRangeRequest HTTP request model
type ReplaceRangeRequest struct {
	OwnerID        *string `json:"ownerId,omitempty"`
	OldStart       string  `json:"oldStart"` // "2025-06-28"
	OldEnd         string  `json:"oldEnd"`   // исключительно
	NewStart       string  `json:"newStart"`
	NewEnd         string  `json:"newEnd"` // исключительно
	OccupancyCount int     `json:"occupancyCount"`
	Kind           string  `json:"kind"` // booking | blocked
}

// ReplacedRangeResponse HTTP response model с новым диапазоном
type ReplacedRangeResponse struct {
	OwnerID        *string  `json:"ownerId"`
	RangeStart     string   `json:"rangeStart"`
	RangeEnd       string   `json:"rangeEnd"`
	Days           []string `json:"days"`
	OccupancyCount int      `json:"occupancyCount"`
	Kind           string   `json:"kind"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceRangeRequest) ToUseCaseRequest() (*replaceRange.Request, error) {
	oldStart, err := domain.ParseDayKey(r.OldStart)
	if err != nil {
		return nil, err
	}

	oldEnd, err := domain.ParseDayKey(r.OldEnd)
	if err != nil {
		return nil, err
	}

	newStart, err := domain.ParseDayKey(r.NewStart)
	if err != nil {
		return nil, err
	}

	newEnd, err := domain.ParseDayKey(r.NewEnd)
	if err != nil {
		return nil, err
	}

	return &replaceRange.Request{
		OwnerID:        r.OwnerID,
		OldRange:       domain.NewDateRange(oldStart, oldEnd),
		NewRange:       domain.NewDateRange(newStart, newEnd),
		OccupancyCount: r.OccupancyCount,
		Kind:           domain.AllocationKind(r.Kind),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *replaceRange.Response) *ReplacedRangeResponse {
	return &ReplacedRangeResponse{
		OwnerID:        resp.OwnerID,
		RangeStart:     resp.RangeStart,
		RangeEnd:       resp.RangeEnd,
		Days:           resp.Days,
		OccupancyCount: resp.OccupancyCount,
		Kind:           string(resp.Kind),
	}
}
