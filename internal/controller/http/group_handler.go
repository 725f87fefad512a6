package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Старый клиент присылал дни то как days, то как weekdays.
// Пустой выбор после сведения алиасов отклоняется на границе:
// нормализация внутри превратила бы его в Everyday,
// что оператор вряд ли имел в виду.
type groupRequest struct {
	GroupName  string   `json:"groupName" validate:"required"`
	LessonTime string   `json:"lessonTime" validate:"required"`
	Days       []string `json:"days"`
	Weekdays   []string `json:"weekdays"`
}

func (r *groupRequest) normalizedDays() []string {
	if len(r.Days) > 0 {
		return r.Days
	}
	return r.Weekdays
}

func (c *Controller) listGroups(ctx *fiber.Ctx) error {
	groups, err := c.groups.List(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(groups)
}

func (c *Controller) createGroup(ctx *fiber.Ctx) error {
	var req groupRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	days := req.normalizedDays()
	if len(days) == 0 {
		return respondError(ctx, fiber.StatusUnprocessableEntity, "at least one day must be selected")
	}

	group, err := c.groups.Create(ctx.Context(), req.GroupName, req.LessonTime, days)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(group)
}

func (c *Controller) getGroup(ctx *fiber.Ctx) error {
	group, err := c.groups.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(group)
}

func (c *Controller) updateGroup(ctx *fiber.Ctx) error {
	var req groupRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	days := req.normalizedDays()
	if len(days) == 0 {
		return respondError(ctx, fiber.StatusUnprocessableEntity, "at least one day must be selected")
	}

	group, err := c.groups.Update(ctx.Context(), ctx.Params("id"), req.GroupName, req.LessonTime, days)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(group)
}

func (c *Controller) deleteGroup(ctx *fiber.Ctx) error {
	if err := c.groups.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// groupCard отдаёт PNG-карточку расписания группы
func (c *Controller) groupCard(ctx *fiber.Ctx) error {
	group, err := c.groups.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	png, err := c.cards.GroupCard(group, time.Now())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}
