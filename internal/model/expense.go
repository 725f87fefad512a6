package model

import "time"

// ExpenseRecord отдельная строка расходов, со студентами не связана.
type ExpenseRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
