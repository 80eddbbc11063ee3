package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/domain/apperrors"
	"github.com/AkshatShukla22/task-management/domain/services"
	"github.com/AkshatShukla22/task-management/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}

// serviceErrorResponse maps a domain error onto the response envelope.
// Validation failures carry field detail; a foreign-owned record is
// indistinguishable from a missing one.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return utils.ValidationErrorResponse(c, []utils.FieldError{validationDetail(err)})
	case apperrors.IsNotFound(err):
		return utils.NotFoundResponse(c, err.Error())
	case apperrors.IsConflict(err):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

func validationDetail(err error) utils.FieldError {
	if ve, ok := err.(*apperrors.ValidationError); ok {
		return utils.FieldError{Field: ve.Field, Message: ve.Message}
	}
	return utils.FieldError{Message: err.Error()}
}
