package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	AvailabilityDecisions *prometheus.CounterVec
	GeneratedSlots        *prometheus.HistogramVec
	CacheRequests         *prometheus.CounterVec

	serviceName string
}

// New создает и регистрирует коллекторы в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает коллекторы и регистрирует их в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		AvailabilityDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_decisions_total",
			Help: "Date availability decisions by deciding rule",
		}, []string{"service", "rule", "available"}),
		GeneratedSlots: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "generated_slots",
			Help:    "Number of slots offered per generation request",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}, []string{"service"}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_cache_requests_total",
			Help: "Schedule cache lookups by result",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.AvailabilityDecisions,
		m.GeneratedSlots,
		m.CacheRequests,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation, status).Observe(duration.Seconds())
}

// ObserveDecision фиксирует решение о доступности даты
func (m *Metrics) ObserveDecision(rule string, available bool) {
	m.AvailabilityDecisions.WithLabelValues(m.serviceName, rule, strconv.FormatBool(available)).Inc()
}

// ObserveGeneratedSlots фиксирует количество сгенерированных слотов
func (m *Metrics) ObserveGeneratedSlots(count int) {
	m.GeneratedSlots.WithLabelValues(m.serviceName).Observe(float64(count))
}

// ObserveCache фиксирует результат обращения к кэшу (hit, miss, error)
func (m *Metrics) ObserveCache(result string) {
	m.CacheRequests.WithLabelValues(m.serviceName, result).Inc()
}
