package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/exceptions"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/timezone"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/weekly"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const businessID = int64(1)

var (
	monday    = types.NewDate(2025, time.December, 22)
	wednesday = types.NewDate(2025, time.December, 24)
	christmas = types.NewDate(2025, time.December, 25)
	saturday  = types.NewDate(2025, time.December, 27)
	sunday    = types.NewDate(2025, time.December, 28)
	nextMon   = types.NewDate(2025, time.December, 29)
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingRecorder struct {
	mu    sync.Mutex
	rules map[string]int
}

func (r *countingRecorder) ObserveDecision(rule string, available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rules == nil {
		r.rules = make(map[string]int)
	}
	r.rules[fmt.Sprintf("%s/%t", rule, available)]++
}

func newResolver(t *testing.T, recorder Recorder) *Resolver {
	t.Helper()
	registry, err := timezone.NewRegistry([]string{"UTC", "America/New_York", "Asia/Tokyo", "Europe/Moscow"}, nil)
	require.NoError(t, err)
	return NewResolver(timezone.NewConverter(registry), DefaultConfig(), nopLogger{}, recorder)
}

func hours(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func slot(weekday time.Weekday, start, end string, available bool) domain.WeeklyAvailabilitySlot {
	return domain.WeeklyAvailabilitySlot{
		BusinessID:  businessID,
		Weekday:     weekday,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: available,
	}
}

// workweek: пн-пт 09:00-17:00, суббота закрыта, воскресенье без записей
func workweek(tz string) *domain.BusinessSchedule {
	s := &domain.BusinessSchedule{BusinessID: businessID, Timezone: tz}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		s.WeeklySlots = append(s.WeeklySlots, slot(wd, "09:00", "17:00", true))
	}
	s.WeeklySlots = append(s.WeeklySlots, slot(time.Saturday, "00:00", "00:00", false))
	return s
}

func exception(date types.Date, typ domain.ExceptionType) domain.AvailabilityException {
	return domain.AvailabilityException{BusinessID: businessID, Date: date, Type: typ}
}

func override(date types.Date, start, end string) domain.AvailabilityException {
	ex := exception(date, domain.ExceptionCustomHours)
	ex.StartTime, ex.EndTime = hours(start), hours(end)
	return ex
}

func closedMonth(month time.Month, year int) domain.AvailabilityException {
	payload, _ := json.Marshal(map[string]int{"month": int(month), "year": year})
	ex := exception(types.NewDate(year, month, 1), domain.ExceptionClosedMonths)
	ex.CustomSchedule = payload
	return ex
}

func allDayBlock(from, to types.Date) domain.BlockedDateRange {
	return domain.BlockedDateRange{
		BusinessID: businessID,
		StartDate:  time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(to.Year, to.Month, to.Day, 0, 0, 0, 0, time.UTC),
		IsAllDay:   true,
	}
}

func TestResolver_WeeklyRules(t *testing.T) {
	r := newResolver(t, nil)
	schedule := workweek("Europe/Moscow")

	tests := []struct {
		name      string
		date      types.Date
		available bool
		rule      Rule
	}{
		{name: "working day", date: monday, available: true, rule: RuleWeekly},
		{name: "closed weekday", date: saturday, available: false, rule: RuleWeekly},
		{name: "weekday without records", date: sunday, available: true, rule: RuleWeeklyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := r.Resolve(schedule, tt.date, "")
			require.NoError(t, err)
			assert.Equal(t, tt.available, decision.Available)
			assert.Equal(t, tt.rule, decision.Rule)
			assert.Equal(t, tt.date, decision.Date)
		})
	}
}

func TestResolver_NoWeeklyRecordsMeansAvailable(t *testing.T) {
	r := newResolver(t, nil)
	schedule := &domain.BusinessSchedule{BusinessID: businessID, Timezone: "UTC"}

	for i := 0; i < 7; i++ {
		ok, err := r.IsDateAvailable(schedule, monday.AddDays(i), "")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestResolver_Precedence(t *testing.T) {
	r := newResolver(t, nil)

	tests := []struct {
		name      string
		mutate    func(s *domain.BusinessSchedule)
		date      types.Date
		available bool
		rule      Rule
	}{
		{
			name: "override beats blocked range",
			mutate: func(s *domain.BusinessSchedule) {
				s.BlockedRanges = append(s.BlockedRanges, allDayBlock(wednesday, types.NewDate(2025, time.December, 26)))
				s.Exceptions = append(s.Exceptions, override(christmas, "10:00", "14:00"))
			},
			date: christmas, available: true, rule: RuleOverride,
		},
		{
			name: "override beats closed month",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, closedMonth(time.December, 2025), override(christmas, "10:00", "14:00"))
			},
			date: christmas, available: true, rule: RuleOverride,
		},
		{
			name: "override opens a closed weekday",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, override(saturday, "10:00", "14:00"))
			},
			date: saturday, available: true, rule: RuleOverride,
		},
		{
			name: "override and unavailable on the same date",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, exception(christmas, domain.ExceptionUnavailable), override(christmas, "10:00", "14:00"))
			},
			date: christmas, available: true, rule: RuleOverride,
		},
		{
			name: "closed month closes a working day",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, closedMonth(time.December, 2025))
			},
			date: monday, available: false, rule: RuleClosedMonth,
		},
		{
			name: "closed month of another year does not apply",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, closedMonth(time.December, 2024))
			},
			date: monday, available: true, rule: RuleWeekly,
		},
		{
			name: "closed month beats blocked range",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, closedMonth(time.December, 2025))
				s.BlockedRanges = append(s.BlockedRanges, allDayBlock(monday, monday))
			},
			date: monday, available: false, rule: RuleClosedMonth,
		},
		{
			name: "blocked range closes a working day",
			mutate: func(s *domain.BusinessSchedule) {
				s.BlockedRanges = append(s.BlockedRanges, allDayBlock(wednesday, christmas))
			},
			date: wednesday, available: false, rule: RuleBlockedRange,
		},
		{
			name: "blocked range beats unavailable",
			mutate: func(s *domain.BusinessSchedule) {
				s.BlockedRanges = append(s.BlockedRanges, allDayBlock(monday, monday))
				s.Exceptions = append(s.Exceptions, exception(monday, domain.ExceptionUnavailable))
			},
			date: monday, available: false, rule: RuleBlockedRange,
		},
		{
			name: "unavailable closes a working day",
			mutate: func(s *domain.BusinessSchedule) {
				s.Exceptions = append(s.Exceptions, exception(monday, domain.ExceptionUnavailable))
			},
			date: monday, available: false, rule: RuleUnavailable,
		},
		{
			name: "records of another business are ignored",
			mutate: func(s *domain.BusinessSchedule) {
				foreign := exception(monday, domain.ExceptionUnavailable)
				foreign.BusinessID = 42
				s.Exceptions = append(s.Exceptions, foreign)
			},
			date: monday, available: true, rule: RuleWeekly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := workweek("UTC")
			tt.mutate(schedule)

			decision, err := r.Resolve(schedule, tt.date, "")
			require.NoError(t, err)
			assert.Equal(t, tt.available, decision.Available)
			assert.Equal(t, tt.rule, decision.Rule)
		})
	}
}

func TestResolver_BlockedRangeUsesViewerTimezone(t *testing.T) {
	r := newResolver(t, nil)
	schedule := workweek("UTC")
	// 2025-12-25 02:00-04:00 UTC = 2025-12-24 21:00-23:00 в Нью-Йорке
	schedule.BlockedRanges = []domain.BlockedDateRange{{
		BusinessID: businessID,
		StartDate:  time.Date(2025, 12, 25, 2, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 12, 25, 4, 0, 0, 0, time.UTC),
	}}

	ok, err := r.IsDateAvailable(schedule, wednesday, "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IsDateAvailable(schedule, wednesday, "America/New_York")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IsDateAvailable(schedule, christmas, "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IsDateAvailable(schedule, christmas, "America/New_York")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolver_Errors(t *testing.T) {
	r := newResolver(t, nil)

	_, err := r.Resolve(nil, monday, "")
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = r.Resolve(workweek("Mars/Olympus"), monday, "")
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)

	_, err = r.Resolve(workweek("UTC"), monday, "Mars/Olympus")
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)

	broken := workweek("UTC")
	broken.Exceptions = []domain.AvailabilityException{exception(monday, "holiday")}
	_, err = r.Resolve(broken, monday, "")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.ErrorIs(t, err, exceptions.ErrUnknownExceptionType)

	overlapping := workweek("UTC")
	overlapping.WeeklySlots = append(overlapping.WeeklySlots, slot(time.Monday, "16:00", "19:00", true))
	_, err = r.Resolve(overlapping, monday, "")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.ErrorIs(t, err, weekly.ErrInvalidWeeklySlot)
}

func TestResolver_NextAvailableDate(t *testing.T) {
	r := newResolver(t, nil)

	t.Run("skips closed days", func(t *testing.T) {
		schedule := workweek("UTC")
		schedule.WeeklySlots = append(schedule.WeeklySlots, slot(time.Sunday, "00:00", "00:00", false))

		date, found, err := r.NextAvailableDate(schedule, saturday, "", 0)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, nextMon, date)
	})

	t.Run("from date itself", func(t *testing.T) {
		date, found, err := r.NextAvailableDate(workweek("UTC"), monday, "", 10)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, monday, date)
	})

	t.Run("skips blocked vacation", func(t *testing.T) {
		schedule := workweek("UTC")
		schedule.BlockedRanges = []domain.BlockedDateRange{allDayBlock(monday, nextMon)}

		date, found, err := r.NextAvailableDate(schedule, monday, "", 30)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, types.NewDate(2025, time.December, 30), date)
	})

	t.Run("horizon exhausted", func(t *testing.T) {
		schedule := workweek("UTC")
		schedule.Exceptions = []domain.AvailabilityException{closedMonth(time.December, 2025)}

		_, found, err := r.NextAvailableDate(schedule, monday, "", 5)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("horizon too large", func(t *testing.T) {
		_, _, err := r.NextAvailableDate(workweek("UTC"), monday, "", domain.MaxHorizonDays+1)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	})
}

func TestResolver_Calendar(t *testing.T) {
	recorder := &countingRecorder{}
	r := newResolver(t, recorder)

	schedule := workweek("Asia/Tokyo")
	schedule.Exceptions = []domain.AvailabilityException{
		exception(wednesday, domain.ExceptionUnavailable),
		override(saturday, "10:00", "12:00"),
	}

	days := 14
	got, err := r.Calendar(context.Background(), schedule, monday, days, "")
	require.NoError(t, err)
	require.Len(t, got, days)

	for i, decision := range got {
		want, err := r.Resolve(schedule, monday.AddDays(i), "")
		require.NoError(t, err)
		assert.Equal(t, want, decision, "day %d", i)
	}

	assert.Equal(t, RuleUnavailable, got[2].Rule)
	assert.True(t, got[5].Available)
	assert.Equal(t, RuleOverride, got[5].Rule)
	assert.Equal(t, RuleWeeklyDefault, got[6].Rule)
	assert.False(t, got[12].Available)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	total := 0
	for _, n := range recorder.rules {
		total += n
	}
	assert.Equal(t, 2*days, total)
}

func TestResolver_CalendarErrors(t *testing.T) {
	r := newResolver(t, nil)

	_, err := r.Calendar(context.Background(), workweek("UTC"), monday, 0, "")
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = r.Calendar(context.Background(), workweek("UTC"), monday, domain.MaxCalendarDays+1, "")
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = r.Calendar(context.Background(), workweek("UTC"), monday, 7, "Nowhere/Else")
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Calendar(ctx, workweek("UTC"), monday, 7, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_OpenIntervals(t *testing.T) {
	r := newResolver(t, nil)
	typeID := int64(7)
	otherTypeID := int64(8)

	t.Run("weekly split shift", func(t *testing.T) {
		schedule := &domain.BusinessSchedule{BusinessID: businessID, Timezone: "UTC", WeeklySlots: []domain.WeeklyAvailabilitySlot{
			slot(time.Monday, "14:00", "18:00", true),
			slot(time.Monday, "09:00", "12:00", true),
		}}

		intervals, decision, err := r.OpenIntervals(schedule, monday, "", &typeID)
		require.NoError(t, err)
		assert.Equal(t, RuleWeekly, decision.Rule)
		assert.Equal(t, []domain.LocalInterval{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		}, intervals)
	})

	t.Run("default hours", func(t *testing.T) {
		intervals, decision, err := r.OpenIntervals(workweek("UTC"), sunday, "", nil)
		require.NoError(t, err)
		assert.Equal(t, RuleWeeklyDefault, decision.Rule)
		assert.Equal(t, []domain.LocalInterval{{Start: "09:00", End: "18:00"}}, intervals)
	})

	t.Run("override hours replace weekly hours", func(t *testing.T) {
		schedule := workweek("UTC")
		scoped := override(monday, "15:00", "16:00")
		scoped.AppointmentTypeID = &otherTypeID
		schedule.Exceptions = []domain.AvailabilityException{
			override(monday, "11:00", "13:00"),
			override(monday, "10:00", "12:00"),
			scoped,
		}

		intervals, decision, err := r.OpenIntervals(schedule, monday, "", &typeID)
		require.NoError(t, err)
		assert.Equal(t, RuleOverride, decision.Rule)
		assert.Equal(t, []domain.LocalInterval{{Start: "10:00", End: "13:00"}}, intervals)

		intervals, _, err = r.OpenIntervals(schedule, monday, "", &otherTypeID)
		require.NoError(t, err)
		assert.Equal(t, []domain.LocalInterval{
			{Start: "10:00", End: "13:00"},
			{Start: "15:00", End: "16:00"},
		}, intervals)
	})

	t.Run("touching overrides stay separate", func(t *testing.T) {
		schedule := workweek("UTC")
		schedule.Exceptions = []domain.AvailabilityException{
			override(monday, "10:45", "11:30"),
			override(monday, "10:00", "10:45"),
		}

		intervals, _, err := r.OpenIntervals(schedule, monday, "", nil)
		require.NoError(t, err)
		assert.Equal(t, []domain.LocalInterval{
			{Start: "10:00", End: "10:45"},
			{Start: "10:45", End: "11:30"},
		}, intervals)
	})

	t.Run("override scoped to another type", func(t *testing.T) {
		schedule := workweek("UTC")
		scoped := override(saturday, "10:00", "12:00")
		scoped.AppointmentTypeID = &otherTypeID
		schedule.Exceptions = []domain.AvailabilityException{scoped}

		intervals, decision, err := r.OpenIntervals(schedule, saturday, "", &typeID)
		require.NoError(t, err)
		assert.True(t, decision.Available)
		assert.Empty(t, intervals)
	})

	t.Run("unavailable date", func(t *testing.T) {
		intervals, decision, err := r.OpenIntervals(workweek("UTC"), saturday, "", nil)
		require.NoError(t, err)
		assert.False(t, decision.Available)
		assert.Empty(t, intervals)
	})
}
