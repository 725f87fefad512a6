package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingDefaultDate(t *testing.T) {
	s := &BillingService{now: func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}}

	// пустая дата — сегодня; и добавление, и правка расходов идут через эту подстановку
	assert.Equal(t, "2026-08-31", s.defaultDate(""))

	// явная дата не трогается
	assert.Equal(t, "2026-07-07", s.defaultDate("2026-07-07"))
}
