package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/weekly"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис чтения недельного расписания бизнеса
type Service struct {
	scheduleLoader ScheduleLoader
	defaultHours   domain.LocalInterval
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписаний.
// defaultOpen и defaultClose - часы дня недели, для которого нет ни одной записи.
func NewService(
	scheduleLoader ScheduleLoader,
	defaultOpen types.TimeString,
	defaultClose types.TimeString,
	logger Logger,
) *Service {
	return &Service{
		scheduleLoader: scheduleLoader,
		defaultHours:   domain.LocalInterval{Start: defaultOpen, End: defaultClose},
		logger:         logger,
	}
}

// GetWeeklySchedule возвращает действующие часы по дням недели.
// Исключения и блокировки не учитываются: для конкретной даты используется резолвер.
func (s *Service) GetWeeklySchedule(ctx context.Context, businessID int64) (*models.WeeklyScheduleResponse, error) {
	schedule, err := s.scheduleLoader.LoadSchedule(ctx, businessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetWeeklySchedule: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetWeeklySchedule: failed to load schedule for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	model, err := weekly.NewModel(businessID, schedule.WeeklySlots)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: business id=%d has invalid weekly slots: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	days := make([]models.DaySchedule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := models.DaySchedule{Weekday: wd}

		switch model.State(wd) {
		case weekly.DayOpen:
			day.Open = true
			day.Source = models.SourceWeekly
			day.Intervals = model.SlotsFor(wd)
		case weekly.DayClosed:
			day.Source = models.SourceClosed
			day.Intervals = []domain.LocalInterval{}
		default:
			day.Open = true
			day.Source = models.SourceDefault
			day.Intervals = []domain.LocalInterval{s.defaultHours}
		}

		days = append(days, day)
	}

	return &models.WeeklyScheduleResponse{
		BusinessID: businessID,
		Timezone:   schedule.Timezone,
		Days:       days,
	}, nil
}
