package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/interfaces/api/handlers"
	"github.com/AkshatShukla22/task-management/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Use(middleware.Protected())
	users.Get("/profile", h.UserHandler.GetProfile)
	users.Put("/profile", h.UserHandler.UpdateProfile)
	users.Put("/password", h.UserHandler.ChangePassword)
	users.Delete("/profile", h.UserHandler.Deactivate)
	users.Get("/", middleware.AdminOnly(), h.UserHandler.ListUsers)
}
