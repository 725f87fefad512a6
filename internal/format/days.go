package format

// Узбекские названия дней недели для отображения (навбар, карточка расписания).
var weekdayNamesUz = map[string]string{
	"Monday":    "Dushanba",
	"Tuesday":   "Seshanba",
	"Wednesday": "Chorshanba",
	"Thursday":  "Payshanba",
	"Friday":    "Juma",
	"Saturday":  "Shanba",
	"Sunday":    "Yakshanba",
}

// WeekdayUz возвращает узбекское название дня или исходную метку, если она неизвестна.
func WeekdayUz(day string) string {
	if name, ok := weekdayNamesUz[day]; ok {
		return name
	}
	return day
}

// WeekdayShort короткая форма для колонок карточки расписания.
func WeekdayShort(day string) string {
	name := WeekdayUz(day)
	if len(name) > 3 {
		return name[:3]
	}
	return name
}
