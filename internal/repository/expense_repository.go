package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"educrm_backend/internal/model"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create добавляет строку расходов
func (r *ExpenseRepository) Create(ctx context.Context, e *model.ExpenseRecord) error {
	e.ID = uuid.NewString()

	query := `
		INSERT INTO expenses (id, name, amount, spent_on)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, e.ID, e.Name, e.Amount, e.Date).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	return nil
}

// List получает расходы, свежие сверху
func (r *ExpenseRepository) List(ctx context.Context) ([]*model.ExpenseRecord, error) {
	query := `
		SELECT id, name, amount, spent_on, created_at
		FROM expenses
		ORDER BY spent_on DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*model.ExpenseRecord
	for rows.Next() {
		var e model.ExpenseRecord
		var spentOn time.Time
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &spentOn, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date = spentOn.Format(dateLayout)
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// Update правит строку расходов
func (r *ExpenseRepository) Update(ctx context.Context, e *model.ExpenseRecord) error {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, spent_on = $3
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, e.Name, e.Amount, e.Date, e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}

	return nil
}

// Delete удаляет строку расходов
func (r *ExpenseRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// NamedTotal агрегат расходов по статье
type NamedTotal struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// TotalsByName суммы расходов по статьям для диаграммы
func (r *ExpenseRepository) TotalsByName(ctx context.Context) ([]NamedTotal, error) {
	query := `
		SELECT name, SUM(amount)
		FROM expenses
		GROUP BY name
		ORDER BY SUM(amount) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("expense totals: %w", err)
	}
	defer rows.Close()

	var totals []NamedTotal
	for rows.Next() {
		var t NamedTotal
		if err := rows.Scan(&t.Name, &t.Total); err != nil {
			return nil, fmt.Errorf("scan expense total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense totals: %w", err)
	}

	return totals, nil
}
