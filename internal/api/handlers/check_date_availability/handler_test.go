package check_date_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkDateAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_date_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeUseCase struct {
	req  *checkDateAvailability.Request
	resp *checkDateAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkDateAvailability.Request) (*checkDateAvailability.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(t *testing.T, uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{businessId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &checkDateAvailability.Response{
		BusinessID: 7,
		Date:       types.NewDate(2025, 12, 25),
		Timezone:   "America/New_York",
		Available:  false,
		Rule:       "closed_month",
	}}

	rec := serve(t, uc, "/businesses/7/availability?date=2025-12-25&tz=America/New_York")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.req.BusinessID)
	assert.Equal(t, types.NewDate(2025, 12, 25), uc.req.Date)
	assert.Equal(t, "America/New_York", uc.req.Timezone)

	var body DateAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, DateAvailabilityResponse{
		BusinessID: 7,
		Date:       "2025-12-25",
		Timezone:   "America/New_York",
		Available:  false,
		Rule:       "closed_month",
	}, body)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
		msg    string
	}{
		{name: "business id", target: "/businesses/abc/availability?date=2025-12-25", msg: msgInvalidBusinessID},
		{name: "zero business id", target: "/businesses/0/availability?date=2025-12-25", msg: msgInvalidBusinessID},
		{name: "missing date", target: "/businesses/1/availability", msg: msgMissingDate},
		{name: "bad date", target: "/businesses/1/availability?date=25.12.2025", msg: msgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.req)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: date is required", checkDateAvailability.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "invalid timezone", err: checkDateAvailability.ErrInvalidTimezone, status: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: business_id=1", checkDateAvailability.ErrBusinessNotFound), status: http.StatusNotFound},
		{name: "internal", err: fmt.Errorf("%w: db down", checkDateAvailability.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, "/businesses/1/availability?date=2025-12-25")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_InternalErrorHidesDetails(t *testing.T) {
	rec := serve(t, &fakeUseCase{err: fmt.Errorf("%w: pq: connection refused", checkDateAvailability.ErrInternal)},
		"/businesses/1/availability?date=2025-12-25")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq")
}
