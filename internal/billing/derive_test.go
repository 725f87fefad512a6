package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func onDay(day int) time.Time {
	return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name             string
		lessons          int
		hasPaidEver      bool
		hasPaidThisMonth bool
		day              int
		wantStatus       Status
		wantNote         string
		wantFee          int64
	}{
		{
			name: "new student in grace period", lessons: 0, day: 3,
			wantStatus: StatusPending, wantNote: NotePaymentSoon, wantFee: FirstFee,
		},
		{
			name: "new student over lesson threshold", lessons: 5, day: 3,
			wantStatus: StatusOverdue, wantNote: NotePayAfter, wantFee: FirstFee,
		},
		{
			name: "paid this month", lessons: 10, hasPaidEver: true, hasPaidThisMonth: true, day: 20,
			wantStatus: StatusPaid, wantNote: NotePaid, wantFee: NextFee,
		},
		{
			name: "returning student before due day", lessons: 10, hasPaidEver: true, day: 7,
			wantStatus: StatusUnpaid, wantNote: NoteDueDay, wantFee: NextFee,
		},
		{
			name: "returning student after due day", lessons: 10, hasPaidEver: true, day: 15,
			wantStatus: StatusOverdue, wantNote: NoteOverdue, wantFee: NextFee,
		},
		{
			name: "exactly at lesson threshold", lessons: GraceLessons, day: 2,
			wantStatus: StatusOverdue, wantNote: NotePayAfter, wantFee: FirstFee,
		},
		{
			name: "paid this month beats everything", lessons: 0, hasPaidEver: true, hasPaidThisMonth: true, day: 28,
			wantStatus: StatusPaid, wantNote: NotePaid, wantFee: NextFee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.lessons, tt.hasPaidEver, tt.hasPaidThisMonth, onDay(tt.day))
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantNote, got.Note)
			assert.Equal(t, tt.wantFee, got.RecommendedFee)
		})
	}
}

// Рекомендация зависит только от hasPaidEver, не от статуса.
func TestRecommendedFee(t *testing.T) {
	for _, lessons := range []int{0, 3, 4, 10} {
		for _, day := range []int{3, 15} {
			assert.Equal(t, FirstFee, Derive(lessons, false, false, onDay(day)).RecommendedFee)
			assert.Equal(t, NextFee, Derive(lessons, true, false, onDay(day)).RecommendedFee)
		}
	}
}
