package http

import (
	"github.com/gofiber/fiber/v2"

	"educrm_backend/internal/model"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (c *Controller) register(ctx *fiber.Ctx) error {
	var req registerRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	user, token, err := c.auth.Register(ctx.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: user})
}

func (c *Controller) login(ctx *fiber.Ctx) error {
	var req loginRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	user, token, err := c.auth.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(authResponse{Token: token, User: user})
}

func (c *Controller) me(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals(userIDKey).(string)

	user, err := c.auth.GetUser(ctx.Context(), userID)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(user)
}
