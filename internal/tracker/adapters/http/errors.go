package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/pkg/logger"
)

const msgInternalServerError = "Internal Server Error"

// ErrorHandler отправляет ошибку простым текстом.
// Ошибка схемы дает 400 с сообщением первого поля, *fiber.Error - свой код, остальное - 500.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var (
		verr *entities.ValidationError
		ferr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		code = fiber.StatusBadRequest
		message = verr.First().Message
	case errors.As(err, &ferr):
		code = ferr.Code
		message = ferr.Message
	default:
		requestCtx := ctx.Context()
		logger.Log(requestCtx).Error(requestCtx, "unhandled request error", zap.Error(err))
	}

	if message == "" {
		message = msgInternalServerError
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(code).SendString(message)
}
