package get_day

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

// AllocationResponse HTTP response model
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

// FromServiceResponse конвертирует представление сервиса в HTTP response
func FromServiceResponse(view *models.AllocationView) *AllocationResponse {
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
