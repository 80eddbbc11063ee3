package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/interfaces/api/handlers"
	"github.com/AkshatShukla22/task-management/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected())

	// Static paths before the :id parameter.
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/all", middleware.AdminOnly(), h.TaskHandler.ListAllTasks)
	tasks.Get("/stats", h.TaskHandler.GetStats)
	tasks.Patch("/bulk-status", h.TaskHandler.BulkUpdateStatus)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
