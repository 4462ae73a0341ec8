package get_availability_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailabilityCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability_calendar"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeUseCase struct {
	req  *getAvailabilityCalendar.Request
	resp *getAvailabilityCalendar.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailabilityCalendar.Request) (*getAvailabilityCalendar.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{businessId}/calendar", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	from := types.NewDate(2025, 12, 24)
	uc := &fakeUseCase{resp: &getAvailabilityCalendar.Response{
		BusinessID: 1,
		From:       from,
		Timezone:   "UTC",
		Days: []getAvailabilityCalendar.Day{
			{Date: from, Available: false, Rule: "blocked_range"},
			{Date: from.AddDays(1), Available: true, Rule: "override_exception"},
		},
	}}

	rec := serve(uc, "/businesses/1/calendar?from=2025-12-24&days=2&tz=UTC")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, from, uc.req.From)
	assert.Equal(t, 2, uc.req.Days)
	assert.Equal(t, "UTC", uc.req.Timezone)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []CalendarDay{
		{Date: "2025-12-24", Available: false, Rule: "blocked_range"},
		{Date: "2025-12-25", Available: true, Rule: "override_exception"},
	}, body.Days)
}

func TestHandle_DefaultsAreLeftToUseCase(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailabilityCalendar.Response{BusinessID: 1}}

	rec := serve(uc, "/businesses/1/calendar")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, uc.req.From.IsZero())
	assert.Zero(t, uc.req.Days)
	assert.Empty(t, uc.req.Timezone)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "negative days", target: "/businesses/1/calendar?days=-3", status: http.StatusBadRequest},
		{name: "bad from", target: "/businesses/1/calendar?from=tomorrow", status: http.StatusBadRequest},
		{name: "too many days", target: "/businesses/1/calendar?days=500", err: getAvailabilityCalendar.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "timezone", target: "/businesses/1/calendar?tz=IST", err: getAvailabilityCalendar.ErrInvalidTimezone, status: http.StatusBadRequest},
		{name: "not found", target: "/businesses/1/calendar", err: getAvailabilityCalendar.ErrBusinessNotFound, status: http.StatusNotFound},
		{name: "internal", target: "/businesses/1/calendar", err: getAvailabilityCalendar.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&fakeUseCase{err: tt.err}, tt.target).Code)
		})
	}
}
