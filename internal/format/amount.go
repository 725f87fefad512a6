package format

import (
	"fmt"
	"strconv"
)

// Amount форматирует сумму в сумах с разделением тысяч: 200000 -> "200 000 so'm"
func Amount(amount int64) string {
	return groupDigits(amount) + " so'm"
}

// ShortAmount форматирует сумму компактно для дашборда: 1 250 000 -> "1.3m", 200 000 -> "200k"
func ShortAmount(amount int64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%.1fm", float64(amount)/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%dk", (amount+500)/1_000)
	default:
		return strconv.FormatInt(amount, 10)
	}
}

// Delay строит отображаемое значение опоздания в том виде,
// в каком его писал старый клиент: "15 daqiqa"
func Delay(minutes int) string {
	return fmt.Sprintf("%d daqiqa", minutes)
}

func groupDigits(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
