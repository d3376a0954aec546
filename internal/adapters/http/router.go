// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notehive/internal/adapters/http/auth"
	"notehive/internal/adapters/http/middleware"
	"notehive/internal/adapters/http/notes"
	"notehive/internal/adapters/http/tenants"
	"notehive/internal/ports/api"
	svc "notehive/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	notesUseCase api.NotesUseCase,
	tenantUseCase api.TenantUseCase,
	tokenSvc svc.TokenService,
	resolver api.TenantResolver,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(notesUseCase)
	tenantHandler := tenants.NewHandler(tenantUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewCORSMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := app.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenSvc, resolver))
	notesRoutes.Get("/", notesHandler.List)
	notesRoutes.Post("/", notesHandler.Create)
	notesRoutes.Get("/:id", notesHandler.Get)
	notesRoutes.Put("/:id", notesHandler.Update)
	notesRoutes.Delete("/:id", notesHandler.Delete)

	// Маршруты арендаторов (требуют авторизации, роль проверяется в сценарии).
	tenantRoutes := app.Group("/tenants")
	tenantRoutes.Use(middleware.NewAuthMiddleware(tokenSvc, resolver))
	tenantRoutes.Post("/:slug/upgrade", tenantHandler.Upgrade)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
