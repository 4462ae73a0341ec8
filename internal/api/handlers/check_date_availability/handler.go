package check_date_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	checkDateAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_date_availability"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone   = "часовой пояс не поддерживается"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	useCase CheckDateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckDateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability
// Query params: date (required, YYYY-MM-DD), tz (optional, IANA)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := handlers.PathInt64(r, "businessId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid business ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		h.logger.Warn("GET /businesses/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkDateAvailability.Request{
		BusinessID: businessID,
		Date:       date,
		Timezone:   r.URL.Query().Get("tz"),
	})
	if err != nil {
		switch {
		case errors.Is(err, checkDateAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, checkDateAvailability.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, checkDateAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/availability - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/availability - Failed to resolve date: business_id=%d, date=%s, request_id=%s, error=%v",
				businessID, date, middleware.RequestIDFromContext(r.Context()), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability - Resolved: business_id=%d, date=%s, available=%t",
		businessID, date, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
