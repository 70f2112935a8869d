package allocate_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	allocateRange "github.com/m04kA/SMC-CalendarService/internal/usecase/allocate_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры аллокации"
	msgInvalidRange       = "некорректный диапазон дат"
	msgRangeConflict      = "диапазон пересекается с существующими аллокациями"
)

type Handler struct {
	useCase AllocateRangeUseCase
	logger  Logger
}

func NewHandler(useCase AllocateRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, allocateRange.ErrRangeConflict):
			h.logger.Warn("POST /allocations - Range conflict: range=[%s, %s)", req.RangeStart, req.RangeEnd)
			handlers.RespondError(w, http.StatusConflict, msgRangeConflict)

		case errors.Is(err, allocateRange.ErrInvalidRange):
			h.logger.Warn("POST /allocations - Invalid range: range=[%s, %s)", req.RangeStart, req.RangeEnd)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, allocateRange.ErrInvalidInput):
			h.logger.Warn("POST /allocations - Invalid input: kind=%s, occupancy=%d", req.Kind, req.OccupancyCount)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /allocations - Failed to allocate range=[%s, %s): %v",
				req.RangeStart, req.RangeEnd, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations - Range allocated successfully: range=[%s, %s), days=%d",
		result.RangeStart, result.RangeEnd, len(result.Days))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
