package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"educrm_backend/internal/card"
	"educrm_backend/internal/service"
)

// Controller связывает HTTP-роуты с сервисами
type Controller struct {
	auth       *service.AuthService
	groups     *service.GroupService
	students   *service.StudentService
	attendance *service.AttendanceService
	billing    *service.BillingService
	dashboard  *service.DashboardService
	cards      *card.Renderer
	validate   *validator.Validate
	logger     *zap.Logger
}

func New(
	auth *service.AuthService,
	groups *service.GroupService,
	students *service.StudentService,
	attendance *service.AttendanceService,
	billing *service.BillingService,
	dashboard *service.DashboardService,
	cards *card.Renderer,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		auth:       auth,
		groups:     groups,
		students:   students,
		attendance: attendance,
		billing:    billing,
		dashboard:  dashboard,
		cards:      cards,
		validate:   validator.New(),
		logger:     logger,
	}
}

// RegisterRoutes вешает все роуты на приложение
func (c *Controller) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", c.register)
	auth.Post("/login", c.login)

	api := app.Group("/api", c.requireAuth)
	api.Get("/me", c.me)

	api.Get("/groups", c.listGroups)
	api.Post("/groups", c.createGroup)
	api.Get("/groups/:id", c.getGroup)
	api.Put("/groups/:id", c.updateGroup)
	api.Delete("/groups/:id", c.deleteGroup)
	api.Get("/groups/:id/card.png", c.groupCard)
	api.Get("/groups/:id/students", c.listStudents)

	api.Post("/students", c.createStudent)
	api.Get("/students/:id", c.getStudent)
	api.Put("/students/:id", c.updateStudent)
	api.Delete("/students/:id", c.deleteStudent)

	api.Get("/attendance/session", c.attendanceSession)
	api.Post("/attendance", c.saveAttendance)
	api.Get("/attendance", c.attendanceHistory)
	api.Delete("/attendance/:id", c.deleteAttendance)

	api.Get("/payments", c.listPayments)
	api.Post("/payments", c.createPayment)
	api.Delete("/payments/:id", c.deletePayment)
	api.Get("/payments/students", c.billingRows)
	api.Get("/payments/monthly", c.monthlyRevenue)

	api.Get("/expenses", c.listExpenses)
	api.Post("/expenses", c.createExpense)
	api.Put("/expenses/:id", c.updateExpense)
	api.Delete("/expenses/:id", c.deleteExpense)
	api.Get("/expenses/totals", c.expenseTotals)

	api.Get("/dashboard", c.dashboardStats)
}
