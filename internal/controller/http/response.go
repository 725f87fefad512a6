package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"educrm_backend/internal/attendance"
	"educrm_backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(errorResponse{Error: message})
}

// respondServiceError переводит ошибки сервисного слоя в HTTP-статусы
func (c *Controller) respondServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return respondError(ctx, fiber.StatusNotFound, "not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		// Формулировка, которую показывает клиент
		return respondError(ctx, fiber.StatusConflict, "Today's attendance has already been saved!")
	case errors.Is(err, service.ErrDuplicateGroup):
		return respondError(ctx, fiber.StatusConflict, "group with this name already exists")
	case errors.Is(err, service.ErrDuplicateEmail):
		return respondError(ctx, fiber.StatusConflict, "user with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondError(ctx, fiber.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, attendance.ErrNothingMarked),
		errors.Is(err, attendance.ErrStatusLocked),
		errors.Is(err, attendance.ErrUnknownStudent),
		errors.Is(err, attendance.ErrInvalidStatus):
		return respondError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	c.logger.Error("Request failed",
		zap.String("path", ctx.Path()),
		zap.Error(err))
	return respondError(ctx, fiber.StatusInternalServerError, "internal server error")
}

// parseBody декодирует и валидирует тело запроса.
// При ошибке сам пишет ответ и возвращает false.
func (c *Controller) parseBody(ctx *fiber.Ctx, dst interface{}) bool {
	if err := ctx.BodyParser(dst); err != nil {
		_ = respondError(ctx, fiber.StatusBadRequest, "invalid request body")
		return false
	}
	if err := c.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			_ = respondError(ctx, fiber.StatusUnprocessableEntity,
				"validation failed on field: "+verrs[0].Field())
			return false
		}
		_ = respondError(ctx, fiber.StatusUnprocessableEntity, "validation failed")
		return false
	}
	return true
}
