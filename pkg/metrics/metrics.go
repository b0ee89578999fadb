package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки result для booking_status_transitions_total
const (
	ResultOK                = "ok"
	ResultInvalidTransition = "invalid_transition"
	ResultExpiredHold       = "expired_hold"
	ResultConflict          = "conflict"
	ResultError             = "error"
)

// Metrics набор метрик сервиса. Методы допускают nil receiver (метрики выключены)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingTransitions  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Booking lifecycle transitions by outcome",
			ConstLabels: constLabels,
		}, []string{"from", "to", "result"}),
	}

	reg.MustRegister(m.httpRequestsTotal, m.httpRequestDuration, m.bookingTransitions)
	return m
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveTransition фиксирует попытку перехода статуса бронирования.
func (m *Metrics) ObserveTransition(from, to, result string) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(from, to, result).Inc()
}
