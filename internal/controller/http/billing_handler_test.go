package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"educrm_backend/internal/model"
)

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

func TestPaymentAmountAliases(t *testing.T) {
	tests := []struct {
		name string
		req  paymentRequest
		want int64
		ok   bool
	}{
		{"amount", paymentRequest{Amount: int64p(200000)}, 200000, true},
		{"sum", paymentRequest{Sum: int64p(300000)}, 300000, true},
		{"total", paymentRequest{Total: int64p(150000)}, 150000, true},
		{"price", paymentRequest{Price: int64p(100000)}, 100000, true},
		{"amount wins over sum", paymentRequest{Amount: int64p(1), Sum: int64p(2)}, 1, true},
		{"nothing set", paymentRequest{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.req.normalizedAmount()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentStatusAliases(t *testing.T) {
	assert.Equal(t, model.PaymentStatusPaid, (&paymentRequest{}).normalizedStatus())
	assert.Equal(t, model.PaymentStatusPaid, (&paymentRequest{IsPaid: boolp(true)}).normalizedStatus())
	assert.Equal(t, model.PaymentStatusUnpaid, (&paymentRequest{IsPaid: boolp(false)}).normalizedStatus())
	assert.Equal(t, model.PaymentStatusUnpaid, (&paymentRequest{Paid: boolp(false)}).normalizedStatus())

	// isPaid важнее paid
	assert.Equal(t, model.PaymentStatusUnpaid,
		(&paymentRequest{IsPaid: boolp(false), Paid: boolp(true)}).normalizedStatus())
}
