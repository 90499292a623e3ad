package handlers

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

const indexFile = "index.html"

// PageHandler отдает стартовую страницу, статические файлы и состояние сервиса.
type PageHandler struct {
	viewsDir  string
	publicDir string
	pinger    repositories.Pinger
}

// NewPageHandler создает обработчик страниц.
func NewPageHandler(viewsDir, publicDir string, pinger repositories.Pinger) *PageHandler {
	return &PageHandler{viewsDir: viewsDir, publicDir: publicDir, pinger: pinger}
}

// Index обрабатывает GET /.
func (h *PageHandler) Index(ctx fiber.Ctx) error {
	return sendFile(ctx, filepath.Join(h.viewsDir, indexFile))
}

// Public обрабатывает GET /public/*. Путь очищается и не может выйти за пределы каталога.
func (h *PageHandler) Public(ctx fiber.Ctx) error {
	rel := filepath.Clean("/" + ctx.Params("*"))
	if rel == "/" {
		return fiber.NewError(fiber.StatusNotFound, ErrMsgNotFound)
	}
	return sendFile(ctx, filepath.Join(h.publicDir, rel))
}

// Health обрабатывает GET /healthz.
func (h *PageHandler) Health(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	if err := h.pinger.Ping(requestCtx); err != nil {
		logger.Log(requestCtx).Warn(requestCtx, "health check failed", zap.Error(err))
		return fiber.NewError(fiber.StatusServiceUnavailable, ErrMsgStorageUnavailable)
	}
	return ctx.SendString("ok")
}

// NotFound завершает цепочку для неизвестных маршрутов.
func NotFound(fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, ErrMsgNotFound)
}

func sendFile(ctx fiber.Ctx, path string) error {
	if err := ctx.SendFile(path); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			return fiber.NewError(fiber.StatusNotFound, ErrMsgNotFound)
		}
		return err
	}
	return nil
}
