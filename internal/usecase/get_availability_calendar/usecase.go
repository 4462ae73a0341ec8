package get_availability_calendar

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case календаря доступности бизнеса на несколько дней вперед
type UseCase struct {
	scheduleLoader ScheduleLoader
	resolver       Resolver
	timezones      TimezoneNormalizer
	converter      Converter
	timeProvider   TimeProvider
	logger         Logger
	defaultDays    int
	maxDays        int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleLoader ScheduleLoader,
	resolver Resolver,
	timezones TimezoneNormalizer,
	converter Converter,
	logger Logger,
	defaultDays int,
	maxDays int,
) *UseCase {
	return &UseCase{
		scheduleLoader: scheduleLoader,
		resolver:       resolver,
		timezones:      timezones,
		converter:      converter,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		defaultDays:    defaultDays,
		maxDays:        maxDays,
	}
}

// Execute выполняет use case построения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityCalendar: business=%d, from=%s, days=%d, tz=%q",
		req.BusinessID, req.From, req.Days, req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GetAvailabilityCalendar: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}

	// 2. Нормализуем часовой пояс зрителя
	viewerTz, err := uc.timezones.Normalize(req.Timezone)
	if err != nil {
		uc.logger.Warn("GetAvailabilityCalendar: unsupported timezone %q: %v", req.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Загружаем расписание бизнеса
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailabilityCalendar: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailabilityCalendar: failed to load schedule for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	calendarTz := viewerTz
	if calendarTz == "" {
		calendarTz = schedule.Timezone
	}

	// 4. Без даты начала строим календарь с сегодняшнего дня
	from := req.From
	if from.IsZero() {
		from, _, err = uc.converter.ToLocal(uc.timeProvider.Now(), calendarTz)
		if err != nil {
			uc.logger.Error("GetAvailabilityCalendar: failed to get today in %s: %v", calendarTz, err)
			return nil, fmt.Errorf("%w: failed to get today: %v", ErrInternal, err)
		}
	}

	// 5. Разрешаем все даты. Ошибка по любой дате - ошибка всего календаря.
	decisions, err := uc.resolver.Calendar(ctx, schedule, from, days, viewerTz)
	if err != nil {
		uc.logger.Error("GetAvailabilityCalendar: failed to resolve %d days from %s for business id=%d: %v",
			days, from, req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to resolve calendar: %v", ErrInternal, err)
	}

	result := make([]Day, len(decisions))
	available := 0
	for i, d := range decisions {
		result[i] = Day{Date: d.Date, Available: d.Available, Rule: string(d.Rule)}
		if d.Available {
			available++
		}
	}

	uc.logger.Info("GetAvailabilityCalendar: business=%d, %d of %d days available from %s",
		req.BusinessID, available, len(result), from)

	return &Response{
		BusinessID: req.BusinessID,
		From:       from,
		Timezone:   calendarTz,
		Days:       result,
	}, nil
}
