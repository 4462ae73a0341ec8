package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

type observation struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	observed []observation
}

func (f *fakeRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	r := mux.NewRouter()
	r.Use(RequestID(nopLogger{}))
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_KeepsValidHeader(t *testing.T) {
	id := uuid.NewString()
	var seen string
	r := mux.NewRouter()
	r.Use(RequestID(nopLogger{}))
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, id)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, id, seen)
	assert.Equal(t, id, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_ReplacesGarbageHeader(t *testing.T) {
	r := mux.NewRouter()
	r.Use(RequestID(nopLogger{}))
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEqual(t, "<script>", rec.Header().Get(HeaderRequestID))
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/businesses/{businessId}/availability", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/businesses/42/availability", nil))

	require.Len(t, recorder.observed, 1)
	assert.Equal(t, observation{
		method: http.MethodGet,
		route:  "/businesses/{businessId}/availability",
		status: http.StatusNotFound,
	}, recorder.observed[0])
}
