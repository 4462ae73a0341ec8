package next_available_date

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case поиска ближайшей даты, на которую можно записаться
type UseCase struct {
	scheduleLoader     ScheduleLoader
	resolver           Resolver
	timezones          TimezoneNormalizer
	converter          Converter
	timeProvider       TimeProvider
	logger             Logger
	defaultHorizonDays int
	maxHorizonDays     int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleLoader ScheduleLoader,
	resolver Resolver,
	timezones TimezoneNormalizer,
	converter Converter,
	logger Logger,
	defaultHorizonDays int,
	maxHorizonDays int,
) *UseCase {
	return &UseCase{
		scheduleLoader:     scheduleLoader,
		resolver:           resolver,
		timezones:          timezones,
		converter:          converter,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		defaultHorizonDays: defaultHorizonDays,
		maxHorizonDays:     maxHorizonDays,
	}
}

// Execute выполняет use case поиска ближайшей доступной даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NextAvailableDate: business=%d, from=%s, tz=%q, horizon=%d",
		req.BusinessID, req.From, req.Timezone, req.HorizonDays)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxHorizonDays); err != nil {
		uc.logger.Warn("NextAvailableDate: validation failed: %v", err)
		return nil, err
	}

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = uc.defaultHorizonDays
	}

	// 2. Нормализуем часовой пояс зрителя
	viewerTz, err := uc.timezones.Normalize(req.Timezone)
	if err != nil {
		uc.logger.Warn("NextAvailableDate: unsupported timezone %q: %v", req.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Загружаем расписание бизнеса
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("NextAvailableDate: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("NextAvailableDate: failed to load schedule for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	searchTz := viewerTz
	if searchTz == "" {
		searchTz = schedule.Timezone
	}

	// 4. Без даты начала ищем с сегодняшнего дня в часовом поясе поиска
	from := req.From
	if from.IsZero() {
		from, _, err = uc.converter.ToLocal(uc.timeProvider.Now(), searchTz)
		if err != nil {
			uc.logger.Error("NextAvailableDate: failed to get today in %s: %v", searchTz, err)
			return nil, fmt.Errorf("%w: failed to get today: %v", ErrInternal, err)
		}
	}

	// 5. Ищем дату
	date, found, err := uc.resolver.NextAvailableDate(schedule, from, viewerTz, horizon)
	if err != nil {
		uc.logger.Error("NextAvailableDate: failed to search from %s for business id=%d: %v", from, req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to search next available date: %v", ErrInternal, err)
	}

	if found {
		uc.logger.Info("NextAvailableDate: business=%d, next available date %s", req.BusinessID, date)
	} else {
		uc.logger.Info("NextAvailableDate: business=%d, no available date in %d days from %s", req.BusinessID, horizon, from)
	}

	return &Response{
		BusinessID:  req.BusinessID,
		From:        from,
		Timezone:    searchTz,
		HorizonDays: horizon,
		Found:       found,
		Date:        date,
	}, nil
}
