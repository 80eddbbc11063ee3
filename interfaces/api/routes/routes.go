package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h)
	SetupUserRoutes(api, h)
	SetupTaskRoutes(api, h)
}
