package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBusinessID        = "некорректный ID бизнеса"
	msgInvalidAppointmentTypeID = "некорректный ID услуги"
	msgMissingDate              = "дата обязательна"
	msgInvalidDate              = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone          = "часовой пояс не поддерживается"
	msgBusinessNotFound         = "бизнес не найден"
	msgAppointmentTypeNotFound  = "услуга не найдена"
	msgAppointmentTypeInvalid   = "услуга недоступна для записи"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/appointment-types/{appointmentTypeId}/slots
// Query params: date (required, YYYY-MM-DD), tz (optional, IANA)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := handlers.PathInt64(r, "businessId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Invalid business ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	appointmentTypeID, ok := handlers.PathInt64(r, "appointmentTypeId")
	if !ok {
		h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Invalid appointment type ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidAppointmentTypeID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BusinessID:        businessID,
		AppointmentTypeID: appointmentTypeID,
		Date:              date,
		Timezone:          r.URL.Query().Get("tz"),
	})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailableSlots.ErrInvalidAppointmentType):
			h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Appointment type not bookable: business_id=%d, appointment_type_id=%d",
				businessID, appointmentTypeID)
			handlers.RespondBadRequest(w, msgAppointmentTypeInvalid)

		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /businesses/{id}/appointment-types/{id}/slots - Appointment type not found: business_id=%d, appointment_type_id=%d",
				businessID, appointmentTypeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/appointment-types/{id}/slots - Failed to get slots: business_id=%d, appointment_type_id=%d, request_id=%s, error=%v",
				businessID, appointmentTypeID, middleware.RequestIDFromContext(r.Context()), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/appointment-types/{id}/slots - Slots retrieved successfully: business_id=%d, appointment_type_id=%d, slots_count=%d",
		businessID, appointmentTypeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
