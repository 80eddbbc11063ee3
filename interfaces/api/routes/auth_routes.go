package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/interfaces/api/handlers"
	"github.com/AkshatShukla22/task-management/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)

	auth.Get("/me", middleware.Protected(), h.UserHandler.GetProfile)
}
