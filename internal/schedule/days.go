package schedule

import (
	"sort"
	"time"
)

// Everyday сентинел "каждый рабочий день": хранится вместо перечисления всех шести дней.
const Everyday = "Everyday"

// Старый клиент иногда писал сентинел с пробелом.
const everydayLegacy = "Every day"

// Порядок рабочих дней недели. Воскресенье не рабочий день
// и в канонический набор не входит.
var daysOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

// WorkingDays возвращает все шесть рабочих дней в каноническом порядке.
func WorkingDays() []string {
	days := make([]string, 0, len(daysOrder))
	for day := range daysOrder {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return daysOrder[days[i]] < daysOrder[days[j]]
	})
	return days
}

// Normalize приводит выбор дней к каноническому виду для хранения.
// Пустой выбор, полный набор рабочих дней или наличие сентинела
// сворачиваются в ["Everyday"]. Неизвестные метки молча отбрасываются.
func Normalize(days []string) []string {
	if hasEveryday(days) {
		return []string{Everyday}
	}

	seen := make(map[string]bool, len(days))
	result := make([]string, 0, len(days))
	for _, day := range days {
		if _, ok := daysOrder[day]; !ok {
			continue
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		result = append(result, day)
	}

	if len(result) == 0 || len(result) == len(daysOrder) {
		return []string{Everyday}
	}

	sort.Slice(result, func(i, j int) bool {
		return daysOrder[result[i]] < daysOrder[result[j]]
	})
	return result
}

// Expand разворачивает хранимый набор для формы редактирования:
// сентинел превращается во все шесть дней, остальное возвращается как есть.
func Expand(stored []string) []string {
	if hasEveryday(stored) {
		return WorkingDays()
	}
	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

// IsEveryday сообщает, означает ли хранимый набор "каждый день".
func IsEveryday(days []string) bool {
	return hasEveryday(days) || len(days) == len(daysOrder)
}

// Contains проверяет, запланирован ли день в наборе (с учётом сентинела).
// Sunday не входит даже в Everyday.
func Contains(days []string, day string) bool {
	if _, working := daysOrder[day]; !working {
		return false
	}
	if hasEveryday(days) {
		return true
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// Today возвращает английскую метку дня недели для момента времени.
// В отличие от канонического набора здесь Sunday возможен:
// отметка посещаемости ссылается на "сегодня" и по воскресеньям.
func Today(now time.Time) string {
	return now.Weekday().String()
}

func hasEveryday(days []string) bool {
	for _, day := range days {
		if day == Everyday || day == everydayLegacy {
			return true
		}
	}
	return false
}
