package http

import (
	"github.com/gofiber/fiber/v2"

	"educrm_backend/internal/model"
)

type createStudentRequest struct {
	GroupID     string   `json:"groupId" validate:"required"`
	StudentName string   `json:"studentName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Days        []string `json:"days"` // пусто — возьмём дни группы
}

type updateStudentRequest struct {
	GroupID     string   `json:"groupId"` // другая группа — перевод
	StudentName string   `json:"studentName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Days        []string `json:"days"`
}

type studentListResponse struct {
	Students []*model.Student `json:"students"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func (c *Controller) listStudents(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 0)
	search := ctx.Query("search")

	students, total, err := c.students.ListByGroup(ctx.Context(), ctx.Params("id"), search, page, limit)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(studentListResponse{
		Students: students,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

func (c *Controller) createStudent(ctx *fiber.Ctx) error {
	var req createStudentRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	student, err := c.students.Create(ctx.Context(),
		req.GroupID, req.StudentName, req.LastName, req.PhoneNumber, req.Days)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(student)
}

func (c *Controller) getStudent(ctx *fiber.Ctx) error {
	student, err := c.students.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(student)
}

func (c *Controller) updateStudent(ctx *fiber.Ctx) error {
	var req updateStudentRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	student, err := c.students.Update(ctx.Context(), ctx.Params("id"),
		req.GroupID, req.StudentName, req.LastName, req.PhoneNumber, req.Days)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(student)
}

func (c *Controller) deleteStudent(ctx *fiber.Ctx) error {
	if err := c.students.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
