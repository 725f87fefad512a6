package http

import (
	"github.com/gofiber/fiber/v2"

	"educrm_backend/internal/model"
)

// Старые клиенты присылали сумму и флаг оплаты под разными именами.
// Алиасы сводятся к одному значению прямо на границе.
type paymentRequest struct {
	GroupID   string `json:"groupId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`

	Amount *int64 `json:"amount"`
	Sum    *int64 `json:"sum"`
	Total  *int64 `json:"total"`
	Price  *int64 `json:"price"`

	IsPaid *bool `json:"isPaid"`
	Paid   *bool `json:"paid"`
}

// normalizedAmount первый заполненный алиас суммы
func (r *paymentRequest) normalizedAmount() (int64, bool) {
	for _, v := range []*int64{r.Amount, r.Sum, r.Total, r.Price} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// normalizedStatus isPaid приоритетнее paid; по умолчанию оплата считается внесённой
func (r *paymentRequest) normalizedStatus() model.PaymentStatus {
	flag := true
	if r.IsPaid != nil {
		flag = *r.IsPaid
	} else if r.Paid != nil {
		flag = *r.Paid
	}

	if flag {
		return model.PaymentStatusPaid
	}
	return model.PaymentStatusUnpaid
}

type expenseRequest struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (c *Controller) listPayments(ctx *fiber.Ctx) error {
	payments, err := c.billing.Payments(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(payments)
}

func (c *Controller) createPayment(ctx *fiber.Ctx) error {
	var req paymentRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	amount, ok := req.normalizedAmount()
	if !ok || amount <= 0 {
		return respondError(ctx, fiber.StatusUnprocessableEntity, "payment amount is required")
	}

	payment, err := c.billing.RecordPayment(ctx.Context(),
		req.GroupID, req.StudentID, amount, req.normalizedStatus(), req.Date)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(payment)
}

func (c *Controller) deletePayment(ctx *fiber.Ctx) error {
	if err := c.billing.DeletePayment(ctx.Context(), ctx.Params("id")); err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// billingRows живые платёжные статусы по всем студентам
func (c *Controller) billingRows(ctx *fiber.Ctx) error {
	rows, err := c.billing.StudentRows(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(rows)
}

func (c *Controller) monthlyRevenue(ctx *fiber.Ctx) error {
	buckets, err := c.billing.MonthlyRevenue(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(buckets)
}

func (c *Controller) listExpenses(ctx *fiber.Ctx) error {
	expenses, err := c.billing.Expenses(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(expenses)
}

func (c *Controller) createExpense(ctx *fiber.Ctx) error {
	var req expenseRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	expense, err := c.billing.AddExpense(ctx.Context(), req.Name, req.Amount, req.Date)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(expense)
}

func (c *Controller) updateExpense(ctx *fiber.Ctx) error {
	var req expenseRequest
	if !c.parseBody(ctx, &req) {
		return nil
	}

	expense, err := c.billing.UpdateExpense(ctx.Context(), ctx.Params("id"), req.Name, req.Amount, req.Date)
	if err != nil {
		return c.respondServiceError(ctx, err)
	}

	return ctx.JSON(expense)
}

func (c *Controller) deleteExpense(ctx *fiber.Ctx) error {
	if err := c.billing.DeleteExpense(ctx.Context(), ctx.Params("id")); err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Controller) expenseTotals(ctx *fiber.Ctx) error {
	totals, err := c.billing.ExpenseTotals(ctx.Context())
	if err != nil {
		return c.respondServiceError(ctx, err)
	}
	return ctx.JSON(totals)
}
