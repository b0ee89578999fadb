package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	getCalendarLayout "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_calendar_layout"
)

const (
	msgMissingAccountID = "отсутствует ID аккаунта"
	msgInvalidParams    = "некорректные параметры запроса, weekStart ожидается в формате YYYY-MM-DD"
)

type Handler struct {
	useCase CalendarUseCase
	logger  Logger
}

func NewHandler(useCase CalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: weekStart (обязательно), tz, resourceId, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar - Missing account ID")
		handlers.RespondUnauthorized(w, msgMissingAccountID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		accountID,
		query.Get("weekStart"),
		query.Get("tz"),
		query.Get("resourceId"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarLayout.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: account_id=%d, error=%v", accountID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar - Failed to build layout: account_id=%d, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Layout built: account_id=%d, week=%s", accountID, query.Get("weekStart"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
