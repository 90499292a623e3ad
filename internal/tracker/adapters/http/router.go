// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"exercisetracker/internal/tracker/adapters/http/handlers"
	"exercisetracker/internal/tracker/adapters/http/middleware"
	"exercisetracker/internal/tracker/config"
	"exercisetracker/internal/tracker/ports/api"
	"exercisetracker/internal/tracker/ports/repositories"
)

// Dependencies - сервисы, которые обслуживает HTTP сервер.
type Dependencies struct {
	Users     api.UserUseCase
	Exercises api.ExerciseUseCase
	Pinger    repositories.Pinger
	Static    config.StaticConfig
}

// NewApp создает приложение fiber с обработчиком ошибок и маршрутами.
// Immutable копирует параметры и тело запроса, так как они сохраняются в хранилище.
func NewApp(cfg config.HTTPConfig, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		Immutable:    true,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: ErrorHandler,
	})
	SetupRouter(app, deps)
	return app
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	userHandler := handlers.NewUserHandler(deps.Users)
	exerciseHandler := handlers.NewExerciseHandler(deps.Exercises)
	pageHandler := handlers.NewPageHandler(deps.Static.ViewsDir, deps.Static.PublicDir, deps.Pinger)

	// Middleware для всех запросов.
	app.Use(middleware.NewMetricsMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New())

	app.Get("/", pageHandler.Index)
	app.Get("/public/*", pageHandler.Public)
	app.Get("/healthz", pageHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	users := app.Group("/api/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Post("/:_id/exercises", exerciseHandler.Add)
	users.Get("/:_id/exercises", exerciseHandler.Exercises)
	users.Get("/:_id/logs", exerciseHandler.Log)

	// Обработчик для несуществующих маршрутов.
	app.Use(handlers.NotFound)
}
