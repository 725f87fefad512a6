package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"educrm_backend/internal/model"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create добавляет запись об оплате (журнал append-only)
func (r *PaymentRepository) Create(ctx context.Context, p *model.PaymentRecord) error {
	p.ID = uuid.NewString()

	query := `
		INSERT INTO payments (id, group_id, group_name, student_id, student_name, amount, status, paid_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		p.ID,
		p.GroupID,
		p.GroupName,
		p.StudentID,
		p.StudentName,
		p.Amount,
		p.Status,
		p.Date,
	).Scan(&p.CreatedAt)

	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

// List получает все оплаты, свежие сверху
func (r *PaymentRepository) List(ctx context.Context) ([]*model.PaymentRecord, error) {
	query := `
		SELECT id, group_id, group_name, student_id, student_name, amount, status, paid_on, created_at
		FROM payments
		ORDER BY paid_on DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		var paidOn time.Time
		err := rows.Scan(
			&p.ID,
			&p.GroupID,
			&p.GroupName,
			&p.StudentID,
			&p.StudentName,
			&p.Amount,
			&p.Status,
			&paidOn,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Date = paidOn.Format(dateLayout)
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	return payments, nil
}

// Delete удаляет запись об оплате
func (r *PaymentRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// PaidEver студенты, у которых была хотя бы одна оплата со статусом paid
func (r *PaymentRepository) PaidEver(ctx context.Context) (map[string]bool, error) {
	return r.paidSet(ctx, `
		SELECT DISTINCT student_id::text
		FROM payments
		WHERE status = 'paid'
	`)
}

// PaidInMonth студенты с оплатой paid в календарном месяце момента at
func (r *PaymentRepository) PaidInMonth(ctx context.Context, at time.Time) (map[string]bool, error) {
	monthStart := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT DISTINCT student_id::text
		FROM payments
		WHERE status = 'paid' AND paid_on >= $1 AND paid_on < $2
	`

	rows, err := r.pool.Query(ctx, query, monthStart.Format(dateLayout), nextMonth.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("paid in month: %w", err)
	}
	defer rows.Close()

	return collectIDSet(rows)
}

// Revenue сумма всех оплат со статусом paid (выручка на дашборде)
func (r *PaymentRepository) Revenue(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'paid'
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}

// CountByStatus число оплат paid/unpaid для дашборда
func (r *PaymentRepository) CountByStatus(ctx context.Context) (paid, unpaid int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'paid'),
		       COUNT(*) FILTER (WHERE status <> 'paid')
		FROM payments
	`
	if err = r.pool.QueryRow(ctx, query).Scan(&paid, &unpaid); err != nil {
		return 0, 0, fmt.Errorf("count payments by status: %w", err)
	}
	return paid, unpaid, nil
}

// MonthlyBucket выручка по месяцам для графика
type MonthlyBucket struct {
	Month string `json:"month"` // YYYY-MM
	Total int64  `json:"total"`
}

// MonthlyRevenue выручка (только paid) с группировкой по месяцам
func (r *PaymentRepository) MonthlyRevenue(ctx context.Context) ([]MonthlyBucket, error) {
	query := `
		SELECT to_char(paid_on, 'YYYY-MM') AS month, SUM(amount)
		FROM payments
		WHERE status = 'paid'
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()

	var buckets []MonthlyBucket
	for rows.Next() {
		var b MonthlyBucket
		if err := rows.Scan(&b.Month, &b.Total); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly revenue: %w", err)
	}

	return buckets, nil
}

func (r *PaymentRepository) paidSet(ctx context.Context, query string) (map[string]bool, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("paid set: %w", err)
	}
	defer rows.Close()

	return collectIDSet(rows)
}

func collectIDSet(rows pgx.Rows) (map[string]bool, error) {
	set := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan student id: %w", err)
		}
		set[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate student ids: %w", err)
	}

	return set, nil
}
