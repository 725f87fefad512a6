package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// PaymentRecord append-only запись об оплате. Статус студента по оплате
// не хранится, а выводится из истории (internal/billing).
type PaymentRecord struct {
	ID          string        `json:"id"`
	GroupID     string        `json:"groupId"`
	GroupName   string        `json:"groupName,omitempty"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName,omitempty"`
	Amount      int64         `json:"amount"` // в сумах, без копеек
	Status      PaymentStatus `json:"status"`
	Date        string        `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time     `json:"created_at"`
}
