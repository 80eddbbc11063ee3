package middleware

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/AkshatShukla22/task-management/pkg/utils"
)

// Protected validates JWT bearer tokens and sets the user context
func Protected() fiber.Handler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrInvalidToken:
				return utils.UnauthorizedResponse(c, "Invalid token")
			case utils.ErrMissingToken:
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}

// RequireRole checks whether the authenticated user holds the given role
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if user.Role != role {
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}

		return c.Next()
	}
}

// AdminOnly gates administrative operations
func AdminOnly() fiber.Handler {
	return RequireRole("admin")
}
