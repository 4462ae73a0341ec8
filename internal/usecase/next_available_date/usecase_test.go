package next_available_date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/timezone"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLoader struct {
	schedule *domain.BusinessSchedule
}

func (l *fakeLoader) LoadSchedule(_ context.Context, businessID int64) (*domain.BusinessSchedule, error) {
	if l.schedule == nil || l.schedule.BusinessID != businessID {
		return nil, scheduleRepo.ErrBusinessNotFound
	}
	return l.schedule, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// weekendsOff пн-пт 10:00-19:00, выходные закрыты
func weekendsOff(tz string) *domain.BusinessSchedule {
	s := &domain.BusinessSchedule{BusinessID: 1, Timezone: tz}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		s.WeeklySlots = append(s.WeeklySlots, domain.WeeklyAvailabilitySlot{
			BusinessID:  1,
			Weekday:     wd,
			StartTime:   "10:00",
			EndTime:     "19:00",
			IsAvailable: wd != time.Saturday && wd != time.Sunday,
		})
	}
	return s
}

func newUseCase(t *testing.T, schedule *domain.BusinessSchedule, now time.Time) *UseCase {
	t.Helper()
	registry, err := timezone.NewRegistry([]string{"UTC", "Pacific/Auckland", "America/Los_Angeles"}, nil)
	require.NoError(t, err)
	converter := timezone.NewConverter(registry)
	resolver := availability.NewResolver(converter, availability.DefaultConfig(), nopLogger{}, nil)

	uc := NewUseCase(&fakeLoader{schedule: schedule}, resolver, registry, converter, nopLogger{}, domain.DefaultHorizonDays, domain.MaxHorizonDays)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_SkipsWeekend(t *testing.T) {
	uc := newUseCase(t, weekendsOff("UTC"), time.Now())

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, From: types.NewDate(2025, time.December, 27)})
	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.Equal(t, types.NewDate(2025, time.December, 29), resp.Date)
	assert.Equal(t, domain.DefaultHorizonDays, resp.HorizonDays)
	assert.Equal(t, "UTC", resp.Timezone)
}

func TestUseCase_TodayDependsOnTimezone(t *testing.T) {
	// 2025-12-26 (пятница) 20:00 UTC = 2025-12-27 (суббота) 09:00 в Окленде
	now := time.Date(2025, 12, 26, 20, 0, 0, 0, time.UTC)

	uc := newUseCase(t, weekendsOff("UTC"), now)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1})
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2025, time.December, 26), resp.From)
	assert.Equal(t, types.NewDate(2025, time.December, 26), resp.Date)

	uc = newUseCase(t, weekendsOff("Pacific/Auckland"), now)
	resp, err = uc.Execute(context.Background(), &Request{BusinessID: 1})
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2025, time.December, 27), resp.From)
	assert.Equal(t, types.NewDate(2025, time.December, 29), resp.Date)
}

func TestUseCase_NotFoundWithinHorizon(t *testing.T) {
	s := weekendsOff("UTC")
	s.BlockedRanges = []domain.BlockedDateRange{{
		BusinessID: 1,
		StartDate:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		IsAllDay:   true,
	}}
	uc := newUseCase(t, s, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, From: types.NewDate(2025, time.December, 22), HorizonDays: 14})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.True(t, resp.Date.IsZero())

	resp, err = uc.Execute(context.Background(), &Request{BusinessID: 1, From: types.NewDate(2025, time.December, 22), HorizonDays: 30})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, types.NewDate(2026, time.January, 12), resp.Date)
}

func TestUseCase_Errors(t *testing.T) {
	uc := newUseCase(t, weekendsOff("UTC"), time.Now())
	from := types.NewDate(2025, time.December, 22)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "bad business", req: &Request{BusinessID: -1, From: from}, wantErr: ErrInvalidInput},
		{name: "negative horizon", req: &Request{BusinessID: 1, From: from, HorizonDays: -3}, wantErr: ErrInvalidInput},
		{name: "horizon too large", req: &Request{BusinessID: 1, From: from, HorizonDays: domain.MaxHorizonDays + 1}, wantErr: ErrInvalidInput},
		{name: "unsupported timezone", req: &Request{BusinessID: 1, From: from, Timezone: "Europe/Atlantis"}, wantErr: ErrInvalidTimezone},
		{name: "unknown business", req: &Request{BusinessID: 2, From: from}, wantErr: ErrBusinessNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
