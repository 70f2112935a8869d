package get_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotAllocated = "на указанную дату нет аллокации"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidDate):
			h.logger.Warn("GET /calendar/days/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, calendar.ErrDayNotAllocated):
			h.logger.Info("GET /calendar/days/{date} - Day %s is not allocated", date)
			handlers.RespondNotFound(w, msgDayNotAllocated)

		default:
			h.logger.Error("GET /calendar/days/{date} - Failed to get day %s: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/days/{date} - Day %s: kind=%s", date, result.Kind)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
