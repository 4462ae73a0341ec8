package next_available_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	nextAvailableDate "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available_date"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHorizon    = "некорректный горизонт поиска"
	msgInvalidTimezone   = "часовой пояс не поддерживается"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	useCase NextAvailableDateUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/next-available-date
// Query params: from (optional, YYYY-MM-DD), tz (optional), horizon (optional, days)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := handlers.PathInt64(r, "businessId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/next-available-date - Invalid business ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/next-available-date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	horizon, ok := handlers.QueryInt(r, "horizon")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/next-available-date - Invalid horizon: %q", r.URL.Query().Get("horizon"))
		handlers.RespondBadRequest(w, msgInvalidHorizon)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &nextAvailableDate.Request{
		BusinessID:  businessID,
		From:        from,
		Timezone:    r.URL.Query().Get("tz"),
		HorizonDays: horizon,
	})
	if err != nil {
		switch {
		case errors.Is(err, nextAvailableDate.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, nextAvailableDate.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, nextAvailableDate.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/next-available-date - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/next-available-date - Failed to search: business_id=%d, request_id=%s, error=%v",
				businessID, middleware.RequestIDFromContext(r.Context()), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
