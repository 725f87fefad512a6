package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "user_id"

// requireAuth проверяет Bearer-токен и кладёт ID пользователя в контекст запроса
func (c *Controller) requireAuth(ctx *fiber.Ctx) error {
	header := ctx.Get(fiber.HeaderAuthorization)
	if header == "" {
		return respondError(ctx, fiber.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return respondError(ctx, fiber.StatusUnauthorized, "invalid authorization header")
	}

	userID, err := c.auth.ParseToken(parts[1])
	if err != nil {
		return respondError(ctx, fiber.StatusUnauthorized, "invalid or expired token")
	}

	ctx.Locals(userIDKey, userID)
	return ctx.Next()
}
