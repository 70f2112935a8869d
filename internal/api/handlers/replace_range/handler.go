package replace_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	replaceRange "github.com/m04kA/SMC-CalendarService/internal/usecase/replace_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры аллокации"
	msgInvalidRange       = "некорректный диапазон дат"
	msgRangeConflict      = "новый диапазон пересекается с существующими аллокациями"
)

type Handler struct {
	useCase ReplaceRangeUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations/replace
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations/replace - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations/replace - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, replaceRange.ErrRangeConflict):
			h.logger.Warn("POST /allocations/replace - Conflict on new range=[%s, %s)", req.NewStart, req.NewEnd)
			handlers.RespondError(w, http.StatusConflict, msgRangeConflict)

		case errors.Is(err, replaceRange.ErrInvalidRange):
			h.logger.Warn("POST /allocations/replace - Invalid range: old=[%s, %s), new=[%s, %s)",
				req.OldStart, req.OldEnd, req.NewStart, req.NewEnd)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, replaceRange.ErrInvalidInput):
			h.logger.Warn("POST /allocations/replace - Invalid input: kind=%s, occupancy=%d",
				req.Kind, req.OccupancyCount)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /allocations/replace - Failed to replace range: old=[%s, %s), error=%v",
				req.OldStart, req.OldEnd, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations/replace - Range moved: [%s, %s) -> [%s, %s)",
		req.OldStart, req.OldEnd, result.RangeStart, result.RangeEnd)
	handlers.RespondJSON(w, http.StatusOK, response)
}
