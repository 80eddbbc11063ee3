package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/pkg/logger"
	"github.com/AkshatShukla22/task-management/pkg/utils"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
