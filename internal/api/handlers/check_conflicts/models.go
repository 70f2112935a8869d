package check_conflicts

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	checkConflicts "github.com/m04kA/SMC-CalendarService/internal/usecase/check_conflicts"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	RangeStart     string  `json:"rangeStart"` // "2025-06-28"
	RangeEnd       string  `json:"rangeEnd"`   // "2025-07-02", исключительно
	ExcludeOwnerID *string `json:"excludeOwnerId,omitempty"`
}

// ConflictResponse занятый день, мешающий запрошенному диапазону
type ConflictResponse struct {
	Date           string  `json:"date"`
	OwnerID        *string `json:"ownerId"`
	RangeStart     string  `json:"rangeStart"`
	RangeEnd       string  `json:"rangeEnd"`
	OccupancyCount int     `json:"occupancyCount"`
	Kind           string  `json:"kind"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	HasConflict bool               `json:"hasConflict"`
	Conflicts   []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() (*checkConflicts.Request, error) {
	start, err := domain.ParseDayKey(r.RangeStart)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDayKey(r.RangeEnd)
	if err != nil {
		return nil, err
	}

	return &checkConflicts.Request{
		Range:          domain.NewDateRange(start, end),
		ExcludeOwnerID: r.ExcludeOwnerID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, alloc := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			Date:           alloc.DayKey,
			OwnerID:        alloc.OwnerID,
			RangeStart:     domain.FormatDayKey(alloc.RangeStart),
			RangeEnd:       domain.FormatDayKey(alloc.RangeEnd),
			OccupancyCount: alloc.OccupancyCount,
			Kind:           string(alloc.Kind),
		})
	}

	return &CheckConflictsResponse{
		HasConflict: resp.HasConflict,
		Conflicts:   conflicts,
	}
}
