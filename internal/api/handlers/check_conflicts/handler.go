package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	checkConflicts "github.com/m04kA/SMC-CalendarService/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный диапазон дат"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations/conflict-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations/conflict-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations/conflict-check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidRange):
			h.logger.Warn("POST /allocations/conflict-check - Invalid range: range=[%s, %s)",
				req.RangeStart, req.RangeEnd)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /allocations/conflict-check - Failed to check range=[%s, %s): %v",
				req.RangeStart, req.RangeEnd, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations/conflict-check - range=[%s, %s), hasConflict=%t",
		req.RangeStart, req.RangeEnd, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, response)
}
