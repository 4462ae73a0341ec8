package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/engine/slots"
	appointmentTypeRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment_type"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	scheduleLoader      ScheduleLoader
	appointmentTypeRepo AppointmentTypeRepository
	bookingRepo         BookingRepository
	generator           SlotGenerator
	converter           Converter
	timezones           TimezoneNormalizer
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleLoader ScheduleLoader,
	appointmentTypeRepo AppointmentTypeRepository,
	bookingRepo BookingRepository,
	generator SlotGenerator,
	converter Converter,
	timezones TimezoneNormalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleLoader:      scheduleLoader,
		appointmentTypeRepo: appointmentTypeRepo,
		bookingRepo:         bookingRepo,
		generator:           generator,
		converter:           converter,
		timezones:           timezones,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, appointmentType=%d, date=%s, tz=%q",
		req.BusinessID, req.AppointmentTypeID, req.Date, req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем часовой пояс зрителя
	viewerTz, err := uc.timezones.Normalize(req.Timezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unsupported timezone %q: %v", req.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Загружаем расписание бизнеса
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load schedule for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 5. Получаем тип записи
	appointmentType, err := uc.appointmentTypeRepo.GetByID(ctx, req.BusinessID, req.AppointmentTypeID)
	if err != nil {
		if errors.Is(err, appointmentTypeRepo.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: appointment type id=%d not found in business id=%d",
				req.AppointmentTypeID, req.BusinessID)
			return nil, ErrAppointmentTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get appointment type id=%d: %v", req.AppointmentTypeID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования за сутки даты в часовом поясе бизнеса
	dayStart, dayEnd, err := uc.converter.DayWindow(req.Date, schedule.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get day window of %s in %q: %v", req.Date, schedule.Timezone, err)
		return nil, fmt.Errorf("%w: failed to get day window: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListReserved(ctx, req.BusinessID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	resolved, err := uc.generator.Generate(&slots.Request{
		Schedule:        schedule,
		Date:            req.Date,
		AppointmentType: appointmentType,
		ViewerTimezone:  viewerTz,
		Booked:          bookedIntervals(bookings),
		Now:             now,
	})
	if err != nil {
		if errors.Is(err, slots.ErrInvalidAppointmentType) {
			uc.logger.Warn("GetAvailableSlots: appointment type id=%d is not bookable: %v", req.AppointmentTypeID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidAppointmentType, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if viewerTz == "" {
		viewerTz = schedule.Timezone
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, appointmentType=%d, date=%s (%d bookings)",
		len(resolved), req.BusinessID, req.AppointmentTypeID, req.Date, len(bookings))

	return &Response{
		BusinessID:        req.BusinessID,
		AppointmentTypeID: req.AppointmentTypeID,
		Date:              req.Date,
		Timezone:          viewerTz,
		DurationMinutes:   appointmentType.DurationMinutes,
		SlotStepMinutes:   appointmentType.SlotStepMinutes(),
		Slots:             toSlots(resolved),
	}, nil
}
