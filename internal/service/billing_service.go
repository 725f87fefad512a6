package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"educrm_backend/internal/billing"
	"educrm_backend/internal/format"
	"educrm_backend/internal/model"
	"educrm_backend/internal/repository"
)

type BillingService struct {
	paymentRepo    *repository.PaymentRepository
	expenseRepo    *repository.ExpenseRepository
	studentRepo    *repository.StudentRepository
	groupRepo      *repository.GroupRepository
	attendanceRepo *repository.AttendanceRepository
	logger         *zap.Logger

	now func() time.Time
}

func NewBillingService(
	paymentRepo *repository.PaymentRepository,
	expenseRepo *repository.ExpenseRepository,
	studentRepo *repository.StudentRepository,
	groupRepo *repository.GroupRepository,
	attendanceRepo *repository.AttendanceRepository,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		paymentRepo:    paymentRepo,
		expenseRepo:    expenseRepo,
		studentRepo:    studentRepo,
		groupRepo:      groupRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// RecordPayment записывает оплату. Имена группы и студента
// денормализуются в запись, как это делал старый клиент.
func (s *BillingService) RecordPayment(ctx context.Context, groupID, studentID string, amount int64, status model.PaymentStatus, date string) (*model.PaymentRecord, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if group == nil || student == nil {
		return nil, ErrNotFound
	}

	payment := &model.PaymentRecord{
		GroupID:     group.ID,
		GroupName:   group.GroupName,
		StudentID:   student.ID,
		StudentName: student.StudentName + " " + student.LastName,
		Amount:      amount,
		Status:      status,
		Date:        s.defaultDate(date),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("student_id", studentID),
		zap.Int64("amount", amount))

	return payment, nil
}

// Payments все записи об оплатах
func (s *BillingService) Payments(ctx context.Context) ([]*model.PaymentRecord, error) {
	return s.paymentRepo.List(ctx)
}

// DeletePayment удаляет запись об оплате
func (s *BillingService) DeletePayment(ctx context.Context, id string) error {
	deleted, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// StudentBillingRow живой платёжный статус студента. Никогда не хранится,
// пересчитывается на каждый просмотр страницы оплат.
type StudentBillingRow struct {
	ID             string         `json:"id"`
	StudentName    string         `json:"studentName"`
	GroupID        string         `json:"groupId"`
	GroupName      string         `json:"groupName"`
	Phone          string         `json:"phone"`
	Lessons        int            `json:"lessons"`
	Status         billing.Status `json:"status"`
	Note           string         `json:"note"`
	RecommendedFee int64          `json:"recommendedFee"`
	FeeLabel       string         `json:"feeLabel"`
}

// StudentRows собирает платёжные строки по всем студентам:
// уроки из истории посещаемости, оплаты из журнала, статус из deriver'а.
func (s *BillingService) StudentRows(ctx context.Context) ([]StudentBillingRow, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	lessons, err := s.attendanceRepo.LessonCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("lesson counts: %w", err)
	}

	paidEver, err := s.paymentRepo.PaidEver(ctx)
	if err != nil {
		return nil, fmt.Errorf("paid ever: %w", err)
	}

	now := s.now()
	paidThisMonth, err := s.paymentRepo.PaidInMonth(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("paid this month: %w", err)
	}

	rows := make([]StudentBillingRow, 0, len(students))
	for _, st := range students {
		assessment := billing.Derive(lessons[st.ID], paidEver[st.ID], paidThisMonth[st.ID], now)

		feeLabel := format.Amount(assessment.RecommendedFee)
		if assessment.Status == billing.StatusPaid {
			feeLabel = billing.NotePaid
		}

		rows = append(rows, StudentBillingRow{
			ID:             st.ID,
			StudentName:    st.StudentName + " " + st.LastName,
			GroupID:        st.GroupID,
			GroupName:      st.GroupName,
			Phone:          st.PhoneNumber,
			Lessons:        lessons[st.ID],
			Status:         assessment.Status,
			Note:           assessment.Note,
			RecommendedFee: assessment.RecommendedFee,
			FeeLabel:       feeLabel,
		})
	}

	return rows, nil
}

// MonthlyRevenue выручка по месяцам для графика
func (s *BillingService) MonthlyRevenue(ctx context.Context) ([]repository.MonthlyBucket, error) {
	return s.paymentRepo.MonthlyRevenue(ctx)
}

// AddExpense добавляет строку расходов
func (s *BillingService) AddExpense(ctx context.Context, name string, amount int64, date string) (*model.ExpenseRecord, error) {
	expense := &model.ExpenseRecord{Name: name, Amount: amount, Date: s.defaultDate(date)}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("add expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense правит строку расходов
func (s *BillingService) UpdateExpense(ctx context.Context, id, name string, amount int64, date string) (*model.ExpenseRecord, error) {
	expense := &model.ExpenseRecord{ID: id, Name: name, Amount: amount, Date: s.defaultDate(date)}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense удаляет строку расходов
func (s *BillingService) DeleteExpense(ctx context.Context, id string) error {
	deleted, err := s.expenseRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Expenses все строки расходов
func (s *BillingService) Expenses(ctx context.Context) ([]*model.ExpenseRecord, error) {
	return s.expenseRepo.List(ctx)
}

// ExpenseTotals суммы расходов по статьям
func (s *BillingService) ExpenseTotals(ctx context.Context) ([]repository.NamedTotal, error) {
	return s.expenseRepo.TotalsByName(ctx)
}

// defaultDate подставляет сегодняшнюю дату вместо пустой.
// В колонку DATE пустая строка не пройдёт.
func (s *BillingService) defaultDate(date string) string {
	if date == "" {
		return s.now().Format("2006-01-02")
	}
	return date
}
