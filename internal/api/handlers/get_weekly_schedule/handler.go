package get_weekly_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/weekly-schedule
// Дни без записей возвращаются с часами по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := handlers.PathInt64(r, "businessId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/weekly-schedule - Invalid business ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.GetWeeklySchedule(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, schedule.ErrBusinessNotFound) {
			h.logger.Warn("GET /businesses/{id}/weekly-schedule - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)
			return
		}

		h.logger.Error("GET /businesses/{id}/weekly-schedule - Failed to get schedule: business_id=%d, request_id=%s, error=%v",
			businessID, middleware.RequestIDFromContext(r.Context()), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/weekly-schedule - Schedule retrieved: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
