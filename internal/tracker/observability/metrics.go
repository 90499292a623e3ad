// Package observability содержит метрики Prometheus сервиса.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exercise_tracker"

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	softErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "soft_errors_total",
		Help:      "Total number of errors reported in a 200 JSON body, by message.",
	}, []string{"message"})

	usersRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "users",
		Name:      "registered_total",
		Help:      "Total number of registered users.",
	})

	exercisesAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "added_total",
		Help:      "Total number of stored exercises.",
	})
)

// ObserveHTTPRequest учитывает обработанный HTTP запрос.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordSoftError учитывает мягкую ошибку API.
func RecordSoftError(message string) {
	softErrorsTotal.WithLabelValues(message).Inc()
}

// RecordUserRegistered учитывает регистрацию пользователя.
func RecordUserRegistered() {
	usersRegisteredTotal.Inc()
}

// RecordExerciseAdded учитывает добавленное упражнение.
func RecordExerciseAdded() {
	exercisesAddedTotal.Inc()
}
