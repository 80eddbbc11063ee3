package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/domain/services"
	"github.com/AkshatShukla22/task-management/pkg/logger"
	"github.com/AkshatShukla22/task-management/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.RegisterResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		// Credentials and disabled-account failures both come back as 401.
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	profile, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.userService.ChangePassword(ctx, user.ID, &req); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

// Deactivate disables the account; user records are never hard-deleted
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userService.Deactivate(ctx, user.ID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var filter dto.UserListFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&filter); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = dto.DefaultPageSize
	}

	users, total, err := h.userService.ListUsers(ctx, (filter.Page-1)*filter.Limit, filter.Limit)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *dto.UserToUserResponse(user)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, filter.Page, filter.Limit)
}
