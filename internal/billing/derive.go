package billing

import "time"

// Тарифы центра, в сумах. Рекомендация, а не ограничение:
// при записи оплаты принимается любая сумма.
const (
	FirstFee int64 = 200_000 // первая оплата нового студента
	NextFee  int64 = 300_000 // последующие месяцы
)

// GraceLessons первые уроки, за которые новый студент ничего не должен.
const GraceLessons = 4

// DueDay оплата за месяц ожидается до этого числа включительно.
const DueDay = 7

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
	StatusUnpaid  Status = "unpaid"
)

// Пояснения к статусам, как их показывал дашборд.
const (
	NotePaid        = "Paid"
	NotePayAfter    = "Pay after 4 lessons"
	NotePaymentSoon = "Payment after 4 lessons"
	NoteOverdue     = "Overdue"
	NoteDueDay      = "Payment day: before the 7th"
)

// Assessment итог оценки оплаты студента. Не хранится,
// пересчитывается на каждый просмотр.
type Assessment struct {
	Status         Status `json:"status"`
	Note           string `json:"note"`
	RecommendedFee int64  `json:"recommendedFee"`
}

// Derive выводит платёжный статус студента. Детерминирована по четырём
// входам и календарной дате, без скрытого состояния.
//
// lessonCount — число посещённых уроков (present или late) с момента записи.
func Derive(lessonCount int, hasPaidEver, hasPaidThisMonth bool, now time.Time) Assessment {
	a := Assessment{
		Status:         StatusUnpaid,
		Note:           NoteDueDay,
		RecommendedFee: NextFee,
	}
	if !hasPaidEver {
		a.RecommendedFee = FirstFee
	}

	switch {
	case hasPaidThisMonth:
		a.Status = StatusPaid
		a.Note = NotePaid
	case !hasPaidEver && lessonCount >= GraceLessons:
		// новый студент пересёк порог уроков, не заплатив ни разу
		a.Status = StatusOverdue
		a.Note = NotePayAfter
	case !hasPaidEver:
		// льготный период нового студента
		a.Status = StatusPending
		a.Note = NotePaymentSoon
	case now.Day() > DueDay:
		a.Status = StatusOverdue
		a.Note = NoteOverdue
	}

	return a
}
