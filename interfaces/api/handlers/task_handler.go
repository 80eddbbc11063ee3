package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/domain/services"
	"github.com/AkshatShukla22/task-management/pkg/logger"
	"github.com/AkshatShukla22/task-management/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseTaskFilter(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tasks, total, err := h.taskService.ListTasks(ctx, user.ID, filter)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToTaskResponses(tasks), total, filter.Page, filter.Limit)
}

// ListAllTasks administrative variant, unscoped by owner
func (h *TaskHandler) ListAllTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter, err := parseTaskFilter(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tasks, total, err := h.taskService.ListAllTasks(ctx, filter)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToTaskResponses(tasks), total, filter.Page, filter.Limit)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) BulkUpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	modified, err := h.taskService.BulkUpdateStatus(ctx, user.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.BulkStatusResponse{ModifiedCount: modified})
}

func (h *TaskHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.taskService.GetStats(ctx, user.ID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, stats)
}

// parseTaskFilter binds and validates query parameters before any query runs
func parseTaskFilter(c *fiber.Ctx) (*dto.TaskFilterRequest, error) {
	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(&filter); err != nil {
		return nil, err
	}

	filter.Normalize()
	return &filter, nil
}
