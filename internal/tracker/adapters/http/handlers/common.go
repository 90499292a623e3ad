// Package handlers содержит HTTP-обработчики сервиса журнала упражнений.
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"exercisetracker/internal/tracker/app/dto"
	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/observability"
)

// Константы ошибок и сообщений для логирования.
const (
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgNotFound           = "not found"
	ErrMsgStorageUnavailable = "storage unavailable"
)

// bindBody разбирает тело запроса. Пустое тело означает отсутствие всех полей.
func bindBody(ctx fiber.Ctx, out any) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.Bind().Body(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}
	return nil
}

// handleError отправляет мягкую ошибку телом {"error": ...} со статусом 200,
// остальные ошибки возвращает обработчику ошибок приложения.
func handleError(ctx fiber.Ctx, err error) error {
	var soft *entities.SoftError
	if !errors.As(err, &soft) {
		return err
	}
	observability.RecordSoftError(soft.Message)
	return sendJSON(ctx, dto.ErrorResponse{Error: soft.Message})
}

func sendJSON(ctx fiber.Ctx, body any) error {
	if err := ctx.JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
