package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр держит собственный registry, поэтому New можно вызывать многократно (например, в тестах)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	auditWritesTotal *prometheus.CounterVec

	dbQueryDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики с константной меткой service
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Количество HTTP запросов к admin API",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Длительность обработки HTTP запросов",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Количество запросов к REST бэкенду",
			ConstLabels: constLabels,
		}, []string{"family", "operation", "outcome"}),
		backendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Длительность запросов к REST бэкенду",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"family", "operation"}),
		auditWritesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "audit_writes_total",
			Help:        "Количество записей в журнал аудита",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Длительность SQL запросов",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.auditWritesTotal,
		m.dbQueryDuration,
	)

	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает registry метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackend учитывает запрос к бэкенду
// outcome: ok, network_error, server_error
func (m *Metrics) ObserveBackend(family, operation, outcome string, duration time.Duration) {
	m.backendRequestsTotal.WithLabelValues(family, operation, outcome).Inc()
	m.backendRequestDuration.WithLabelValues(family, operation).Observe(duration.Seconds())
}

// ObserveAuditWrite учитывает запись в журнал аудита
func (m *Metrics) ObserveAuditWrite(outcome string) {
	m.auditWritesTotal.WithLabelValues(outcome).Inc()
}

// ObserveDBQuery учитывает SQL запрос
// operation: exec, query, query_row; status: ok, error
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}
