package http

import (
	"github.com/gofiber/fiber/v2"

	"educrm_backend/internal/model"
	"educrm_backend/internal/service"
)

type markRequest struct {
	StudentID    string `json:"studentId" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=pending present absent late"`
	DelayMinutes int    `json:"delayMinutes" validate:"min=0"`
}

type saveAttendanceRequest struct {
	GroupID string        `json:"groupId" validate:"required"`
	Date    string        `json:"date" validate:"required,datetime=2006-01-02"`
	Marks   []markRequest `json:"marks" validate:"required,min=1,dive"`
}

// attendanceSession открывает день отметки: свежий ростер
// либо снапшот уже сохранённой записи
func (c *Controller) attendanceSession(ctx *fiber.Ctx) error {
	groupID := ctx.Query("groupId")
	date := ctx.Query("date")
	if groupID == "" || date == "" {
		return respondError(ctx, fiber.StatusBadRequest, "groupId and date are required")
	}

	view, err := c.attendance.OpenSession(ctx.Context(), groupID, date)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(view)
}

func (c *Controller) saveAttendance(ctx *fiber.Ctx) error {
	var req saveAttendanceRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	marks := make([]service.Mark, len(req.Marks))
	for i, m := range req.Marks {
		marks[i] = service.Mark{
			StudentID:    m.StudentID,
			Status:       model.AttendanceStatus(m.Status),
			DelayMinutes: m.DelayMinutes,
		}
	}

	rec, err := c.attendance.Save(ctx.Context(), req.GroupID, req.Date, marks)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

func (c *Controller) attendanceHistory(ctx *fiber.Ctx) error {
	records, err := c.attendance.History(ctx.Context(), ctx.Query("groupId"), ctx.Query("date"))
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(records)
}

func (c *Controller) deleteAttendance(ctx *fiber.Ctx) error {
	if err := c.attendance.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
