package check_date_availability

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case проверки, можно ли записаться в бизнес на дату
type UseCase struct {
	scheduleLoader ScheduleLoader
	resolver       Resolver
	timezones      TimezoneNormalizer
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleLoader ScheduleLoader,
	resolver Resolver,
	timezones TimezoneNormalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleLoader: scheduleLoader,
		resolver:       resolver,
		timezones:      timezones,
		logger:         logger,
	}
}

// Execute выполняет use case проверки доступности даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDateAvailability: business=%d, date=%s, tz=%q", req.BusinessID, req.Date, req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем часовой пояс зрителя
	viewerTz, err := uc.timezones.Normalize(req.Timezone)
	if err != nil {
		uc.logger.Warn("CheckDateAvailability: unsupported timezone %q: %v", req.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 3. Загружаем расписание бизнеса
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CheckDateAvailability: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CheckDateAvailability: failed to load schedule for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 4. Разрешаем дату
	decision, err := uc.resolver.Resolve(schedule, req.Date, viewerTz)
	if err != nil {
		uc.logger.Error("CheckDateAvailability: failed to resolve %s for business id=%d: %v", req.Date, req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to resolve date: %v", ErrInternal, err)
	}

	if viewerTz == "" {
		viewerTz = schedule.Timezone
	}

	uc.logger.Info("CheckDateAvailability: business=%d, date=%s, available=%t, rule=%s",
		req.BusinessID, req.Date, decision.Available, decision.Rule)

	return &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		Timezone:   viewerTz,
		Available:  decision.Available,
		Rule:       string(decision.Rule),
	}, nil
}
