package http

import "github.com/gofiber/fiber/v2"

func (c *Controller) dashboardStats(ctx *fiber.Ctx) error {
	stats, err := c.dashboard.Stats(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(stats)
}
