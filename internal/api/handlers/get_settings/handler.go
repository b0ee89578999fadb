package get_settings

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
)

const msgMissingAccountID = "отсутствует ID аккаунта"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
// Для аккаунта без сохраненных настроек возвращаются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		h.logger.Warn("GET /settings - Missing account ID")
		handlers.RespondUnauthorized(w, msgMissingAccountID)
		return
	}

	result, err := h.service.Get(r.Context(), accountID)
	if err != nil {
		h.logger.Error("GET /settings - Failed to get settings: account_id=%d, error=%v", accountID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved successfully: account_id=%d", accountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
