package card

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"educrm_backend/internal/format"
	"educrm_backend/internal/model"
	"educrm_backend/internal/schedule"
)

// Константы размеров и отступов
const (
	cardWidth    = 960
	cardHeight   = 420
	headerHeight = 96
	columnGap    = 10.0
	cornerRadius = 10.0
	footerHeight = 46
)

// Константы шрифтов
const (
	titleFontSize    = 30.0
	subtitleFontSize = 18.0
	dayFontSize      = 20.0
	timeFontSize     = 17.0
	footerFontSize   = 14.0
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	headerColor     = color.RGBA{15, 19, 26, 255}
	titleColor      = color.RGBA{245, 246, 248, 255}
	subtitleColor   = color.RGBA{160, 168, 178, 255}
	dayOnColor      = color.RGBA{133, 193, 85, 220}  // день есть в расписании
	dayOffColor     = color.RGBA{220, 220, 220, 255} // дня нет
	todayRingColor  = color.RGBA{255, 99, 71, 220}
	dayTextColor    = color.RGBA{20, 24, 28, 230}
	offTextColor    = color.RGBA{110, 115, 120, 200}
	footerTextColor = color.RGBA{90, 95, 100, 220}
)

// Renderer рисует карточку недельного расписания группы.
type Renderer struct {
	fontPath string // путь к TTF; пусто — используется basicfont
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// GroupCard рисует карточку: шапка с группой и временем урока,
// шесть колонок рабочих дней, запланированные дни подсвечены,
// сегодняшний день обведён.
func (r *Renderer) GroupCard(group *model.Group, now time.Time) ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	// Фон
	dc.SetColor(bgColor)
	dc.Clear()

	// Шапка
	dc.SetColor(headerColor)
	dc.DrawRectangle(0, 0, cardWidth, headerHeight)
	dc.Fill()

	r.loadFont(dc, titleFontSize)
	dc.SetColor(titleColor)
	dc.DrawStringAnchored(group.GroupName, 24, headerHeight/2-10, 0, 0.5)

	r.loadFont(dc, subtitleFontSize)
	dc.SetColor(subtitleColor)
	subtitle := fmt.Sprintf("Dars vaqti: %s", group.LessonTime)
	if schedule.IsEveryday(group.Days) {
		subtitle += "  ·  har kuni"
	}
	dc.DrawStringAnchored(subtitle, 24, headerHeight/2+18, 0, 0.5)

	// Колонки рабочих дней
	days := schedule.WorkingDays()
	today := schedule.Today(now)

	colWidth := (float64(cardWidth) - columnGap*float64(len(days)+1)) / float64(len(days))
	colTop := float64(headerHeight) + 24
	colHeight := float64(cardHeight) - colTop - footerHeight - 16

	for i, day := range days {
		x := columnGap + float64(i)*(colWidth+columnGap)
		scheduled := schedule.Contains(group.Days, day)

		if scheduled {
			dc.SetColor(dayOnColor)
		} else {
			dc.SetColor(dayOffColor)
		}
		dc.DrawRoundedRectangle(x, colTop, colWidth, colHeight, cornerRadius)
		dc.Fill()

		// Сегодняшний день обводим
		if day == today {
			dc.SetColor(todayRingColor)
			dc.SetLineWidth(3)
			dc.DrawRoundedRectangle(x, colTop, colWidth, colHeight, cornerRadius)
			dc.Stroke()
		}

		r.loadFont(dc, dayFontSize)
		if scheduled {
			dc.SetColor(dayTextColor)
		} else {
			dc.SetColor(offTextColor)
		}
		dc.DrawStringAnchored(format.WeekdayUz(day), x+colWidth/2, colTop+28, 0.5, 0.5)

		r.loadFont(dc, timeFontSize)
		if scheduled {
			dc.SetColor(dayTextColor)
			dc.DrawStringAnchored(group.LessonTime, x+colWidth/2, colTop+colHeight/2, 0.5, 0.5)
		} else {
			dc.SetColor(offTextColor)
			dc.DrawStringAnchored("—", x+colWidth/2, colTop+colHeight/2, 0.5, 0.5)
		}
	}

	// Подвал с датой генерации
	r.loadFont(dc, footerFontSize)
	dc.SetColor(footerTextColor)
	footer := fmt.Sprintf("%s, %s", format.WeekdayUz(today), now.Format("2006-01-02"))
	dc.DrawStringAnchored(footer, float64(cardWidth)-20, float64(cardHeight)-footerHeight/2, 1, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule card: %w", err)
	}

	return buf.Bytes(), nil
}

// loadFont загружает TTF нужного размера или откатывается на basicfont
func (r *Renderer) loadFont(dc *gg.Context, size float64) {
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, size); err == nil {
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}
