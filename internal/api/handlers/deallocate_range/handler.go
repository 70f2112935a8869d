package deallocate_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	deallocateRange "github.com/m04kA/SMC-CalendarService/internal/usecase/deallocate_range"
)

const (
	msgMissingRange = "параметры rangeStart и rangeEnd обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	useCase DeallocateRangeUseCase
	logger  Logger
}

func NewHandler(useCase DeallocateRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/allocations?rangeStart=YYYY-MM-DD&rangeEnd=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart := r.URL.Query().Get("rangeStart")
	rangeEnd := r.URL.Query().Get("rangeEnd")

	if rangeStart == "" || rangeEnd == "" {
		h.logger.Warn("DELETE /allocations - Missing range params: rangeStart=%q, rangeEnd=%q",
			rangeStart, rangeEnd)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := domain.ParseDayKey(rangeStart)
	if err != nil {
		h.logger.Warn("DELETE /allocations - Invalid rangeStart %q: %v", rangeStart, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := domain.ParseDayKey(rangeEnd)
	if err != nil {
		h.logger.Warn("DELETE /allocations - Invalid rangeEnd %q: %v", rangeEnd, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deallocateRange.Request{
		Range: domain.NewDateRange(start, end),
	})
	if err != nil {
		switch {
		case errors.Is(err, deallocateRange.ErrInvalidRange):
			h.logger.Warn("DELETE /allocations - Invalid range: range=[%s, %s)", rangeStart, rangeEnd)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("DELETE /allocations - Failed to deallocate range=[%s, %s): %v",
				rangeStart, rangeEnd, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /allocations - Range deallocated: range=[%s, %s), deleted=%d",
		result.RangeStart, result.RangeEnd, result.DeletedDays)
	handlers.RespondNoContent(w)
}
