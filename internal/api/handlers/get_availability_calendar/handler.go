package get_availability_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	getAvailabilityCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability_calendar"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays       = "некорректное количество дней"
	msgInvalidTimezone   = "часовой пояс не поддерживается"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	useCase GetAvailabilityCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/calendar
// Query params: from (optional, YYYY-MM-DD), days (optional), tz (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := handlers.PathInt64(r, "businessId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/calendar - Invalid business ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days, ok := handlers.QueryInt(r, "days")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/calendar - Invalid days: %q", r.URL.Query().Get("days"))
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailabilityCalendar.Request{
		BusinessID: businessID,
		From:       from,
		Days:       days,
		Timezone:   r.URL.Query().Get("tz"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilityCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailabilityCalendar.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailabilityCalendar.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/calendar - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/calendar - Failed to build calendar: business_id=%d, request_id=%s, error=%v",
				businessID, middleware.RequestIDFromContext(r.Context()), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/calendar - Calendar built: business_id=%d, days=%d", businessID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
