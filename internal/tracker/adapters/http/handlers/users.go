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
	LogHandlerCreateUser = "handling create user request"
	LogHandlerListUsers  = "handling list users request"
)

// UserHandler обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	users api.UserUseCase
}

// NewUserHandler создает новый экземпляр обработчика пользователей.
func NewUserHandler(users api.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

// Create обрабатывает POST /api/users.
func (h *UserHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "UserHandler.Create"))
	log.Debug(requestCtx, LogHandlerCreateUser)

	var req dto.CreateUserRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	req.Detach()

	user, err := h.users.Register(requestCtx, req.Username)
	if err != nil {
		return handleError(ctx, err)
	}

	observability.RecordUserRegistered()
	return sendJSON(ctx, dto.NewUserResponse(user))
}

// List обрабатывает GET /api/users.
func (h *UserHandler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListUsers)

	users, err := h.users.List(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, dto.NewUserListResponse(users))
}
