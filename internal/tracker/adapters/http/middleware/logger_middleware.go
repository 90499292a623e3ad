// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"exercisetracker/pkg/logger"
)

// NewLoggerMiddleware создает промежуточное ПО, которое присваивает запросу идентификатор
// и логирует его выполнение. Ошибки цепочки передаются в обработчик ошибок приложения здесь же,
// чтобы в лог попал итоговый статус ответа.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(logger.RequestIDHeader))
		ctx.SetContext(requestCtx)
		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(logger.RequestIDHeader, id)
		}

		start := time.Now()
		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Debug(requestCtx, "Request started")

		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				log.Error(requestCtx, "Failed to send error response", zap.Error(err))
			}
		}

		logFields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if chainErr != nil {
			log.Warn(requestCtx, "Request failed", append(logFields, zap.Error(chainErr))...)
			return nil
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
