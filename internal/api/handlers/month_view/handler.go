package month_view

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается число от 0 до 11"
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

// Handle GET /api/v1/calendar/{year}/{month}
// Месяц в URL нумеруется с нуля: 0 - январь, 11 - декабрь
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid year %q", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthIndex, err := strconv.Atoi(vars["month"])
	if err != nil || monthIndex < 0 || monthIndex > 11 {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid month %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.MonthView(r.Context(), year, time.Month(monthIndex+1))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar/{year}/{month} - Invalid month: year=%d, month=%d", year, monthIndex)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar/{year}/{month} - Failed to build view: year=%d, month=%d, error=%v",
				year, monthIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{year}/{month} - year=%d, month=%d, allocations=%d",
		year, monthIndex, len(result.Allocations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
