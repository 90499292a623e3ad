package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/app/dto"
	"exercisetracker/internal/tracker/observability"
	"exercisetracker/internal/tracker/ports/api"
	"exercisetracker/pkg/logger"
)

const (
	LogHandlerAddExercise = "handling add exercise request"
	LogHandlerExercises   = "handling exercises query request"
	LogHandlerLog         = "handling exercise log request"

	paramUserID = "_id"
	queryFrom   = "from"
	queryTo     = "to"
	queryLimit  = "limit"
)

// ExerciseHandler обработчик HTTP-запросов для журнала упражнений.
type ExerciseHandler struct {
	exercises api.ExerciseUseCase
}

// NewExerciseHandler создает новый экземпляр обработчика упражнений.
func NewExerciseHandler(exercises api.ExerciseUseCase) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// Add обрабатывает POST /api/users/:_id/exercises.
func (h *ExerciseHandler) Add(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID := ctx.Params(paramUserID)
	log := logger.Log(requestCtx).With(zap.String("handler", "ExerciseHandler.Add"), zap.String("userID", userID))
	log.Debug(requestCtx, LogHandlerAddExercise)

	var req dto.CreateExerciseRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	req.Detach()

	result, err := h.exercises.Add(requestCtx, req.ToAddInput(userID))
	if err != nil {
		return handleError(ctx, err)
	}

	observability.RecordExerciseAdded()
	return sendJSON(ctx, dto.NewAddExerciseResponse(result))
}

// Exercises обрабатывает GET /api/users/:_id/exercises.
func (h *ExerciseHandler) Exercises(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerExercises)

	result, err := h.exercises.Query(requestCtx, logQuery(ctx))
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, dto.NewExercisesResponse(result))
}

// Log обрабатывает GET /api/users/:_id/logs.
func (h *ExerciseHandler) Log(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLog)

	result, err := h.exercises.Log(requestCtx, logQuery(ctx))
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, dto.NewLogResponse(result))
}

// logQuery читает параметры выборки. Отсутствующий limit отличается от пустого.
func logQuery(ctx fiber.Ctx) api.LogQuery {
	req := dto.LogQueryRequest{
		From: ctx.Query(queryFrom),
		To:   ctx.Query(queryTo),
	}
	args := ctx.RequestCtx().QueryArgs()
	if args.Has(queryLimit) {
		limit := string(args.Peek(queryLimit))
		req.Limit = &limit
	}
	return req.ToLogQuery(ctx.Params(paramUserID))
}
