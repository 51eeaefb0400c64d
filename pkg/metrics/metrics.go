package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// HTTP-метрики пишет middleware, метрики document store пишет docstore-клиент
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	StoreOpsTotal   *prometheus.CounterVec
	StoreOpDuration *prometheus.HistogramVec
	CacheFallbacks  *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StoreOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "docstore_operations_total",
			Help:        "Total number of document store operations",
			ConstLabels: constLabels,
		}, []string{"collection", "operation", "result"}),

		StoreOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "docstore_operation_duration_seconds",
			Help:        "Document store operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"collection", "operation"}),

		CacheFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "docstore_cache_fallbacks_total",
			Help:        "Total number of reads served from the cache after a live read failure",
			ConstLabels: constLabels,
		}, []string{"collection", "result"}),
	}
}

// ObserveStoreOp записывает результат операции document store
func (m *Metrics) ObserveStoreOp(collection, operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOpsTotal.WithLabelValues(collection, operation, result).Inc()
	m.StoreOpDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}

// ObserveCacheFallback записывает попытку чтения из кеша после сбоя основного источника
func (m *Metrics) ObserveCacheFallback(collection string, hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	m.CacheFallbacks.WithLabelValues(collection, result).Inc()
}
