package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"exercisetracker/internal/tracker/observability"
)

const unmatchedRoute = "unmatched"

// NewMetricsMiddleware создает промежуточное ПО, учитывающее запросы в метриках Prometheus.
func NewMetricsMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		route := unmatchedRoute
		if r := ctx.Route(); r != nil && status != fiber.StatusNotFound {
			route = r.Path
		}
		observability.ObserveHTTPRequest(ctx.Method(), route, status, time.Since(start))

		return err
	}
}
