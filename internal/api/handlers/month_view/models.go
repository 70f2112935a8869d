package month_view

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

// AllocationResponse аллокация в составе проекции месяца
type AllocationResponse struct {
	Date           string  `json:"date"`
	OwnerID        *string `json:"ownerId"`
	RangeStart     string  `json:"rangeStart"`
	RangeEnd       string  `json:"rangeEnd"`
	OccupancyCount int     `json:"occupancyCount"`
	Kind           string  `json:"kind"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// DayResponse один день сетки месяца
type DayResponse struct {
	Date           string              `json:"date"`
	Status         string              `json:"status"` // available | booked | blocked
	OccupancyCount int                 `json:"occupancyCount"`
	Allocation     *AllocationResponse `json:"allocation,omitempty"`
}

// MonthViewResponse HTTP response model
// Month в ответе нумеруется с нуля, как и в URL
type MonthViewResponse struct {
	Year        int                  `json:"year"`
	Month       int                  `json:"month"` // 0-11
	Days        []DayResponse        `json:"days"`
	Allocations []AllocationResponse `json:"allocations"`
}

func fromAllocationView(view *models.AllocationView) *AllocationResponse {
	if view == nil {
		return nil
	}

	return &AllocationResponse{
		Date:           view.DayKey,
		OwnerID:        view.OwnerID,
		RangeStart:     view.RangeStart,
		RangeEnd:       view.RangeEnd,
		OccupancyCount: view.OccupancyCount,
		Kind:           view.Kind,
		CreatedAt:      view.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      view.UpdatedAt.Format(time.RFC3339),
	}
}

// FromServiceResponse конвертирует проекцию месяца в HTTP response
func FromServiceResponse(view *models.MonthView) *MonthViewResponse {
	days := make([]DayResponse, 0, len(view.Days))
	for _, day := range view.Days {
		days = append(days, DayResponse{
			Date:           day.Date,
			Status:         day.Status,
			OccupancyCount: day.OccupancyCount,
			Allocation:     fromAllocationView(day.Allocation),
		})
	}

	allocations := make([]AllocationResponse, 0, len(view.Allocations))
	for _, alloc := range view.Allocations {
		allocations = append(allocations, *fromAllocationView(alloc))
	}

	return &MonthViewResponse{
		Year:        view.Year,
		Month:       view.Month - 1,
		Days:        days,
		Allocations: allocations,
	}
}
