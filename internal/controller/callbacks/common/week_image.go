package common

import (
	"bytes"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth      = 1120
	imageHeight     = 720
	headerHeight    = 80
	leftLabelsWidth = 70
	dayPaddingX     = 6
	minSlotHeight   = 8.0
	slotRadius      = 5.0
	totalDays       = 7
	defaultMinHour  = 8
	defaultMaxHour  = 20
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{222, 222, 222, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 90}
	slotColor      = color.RGBA{133, 193, 85, 220}
	slotTextColor  = color.RGBA{20, 24, 28, 230}
)

// weekBounds содержит границы недели
type weekBounds struct {
	start time.Time
	end   time.Time
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// GenerateAvailabilityImage рисует недельную сетку с интервалами доступности.
// reference задаёт неделю (Пн-Вс), интервалы вне недели не рисуются.
func GenerateAvailabilityImage(reference time.Time, intervals []model.TimeInterval) ([]byte, error) {
	week := normalizeToWeekBounds(reference)
	hours := calculateHourRange(week, intervals)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	cellHeight := gridHeight / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)
	drawDays(dc, week, dayWidth, gridHeight)
	drawIntervals(dc, week, intervals, hours, dayWidth, cellHeight)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalizeToWeekBounds нормализует дату к границам недели (Пн-Вс)
func normalizeToWeekBounds(date time.Time) weekBounds {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	sinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		sinceMonday = 6
	}

	start := day.AddDate(0, 0, -sinceMonday)
	return weekBounds{start: start, end: start.AddDate(0, 0, totalDays)}
}

// calculateHourRange подбирает диапазон часов так, чтобы вошли все интервалы недели
func calculateHourRange(week weekBounds, intervals []model.TimeInterval) hourRange {
	minHour, maxHour := defaultMinHour, defaultMaxHour

	for _, interval := range intervals {
		if interval.End.Before(week.start) || !interval.Start.Before(week.end) {
			continue
		}
		if h := interval.Start.Hour(); h < minHour {
			minHour = h
		}
		if h := interval.End.Hour(); h+1 > maxHour {
			maxHour = h + 1
		}
	}

	if maxHour > 24 {
		maxHour = 24
	}

	return hourRange{start: minHour, end: maxHour, total: maxHour - minHour}
}

func drawHeader(dc *gg.Context, week weekBounds) {
	dc.SetColor(textColor)
	title := week.start.Format("02.01.2006") + " — " + week.end.AddDate(0, 0, -1).Format("02.01.2006")
	dc.DrawStringAnchored("Availability: "+title, imageWidth/2, headerHeight/3, 0.5, 0.5)

	for day := 0; day < totalDays; day++ {
		date := week.start.AddDate(0, 0, day)
		x := float64(leftLabelsWidth) + (float64(day)+0.5)*float64(imageWidth-leftLabelsWidth)/totalDays
		dc.DrawStringAnchored(date.Format("Mon 02.01"), x, headerHeight*2/3, 0.5, 0.5)
	}
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)
	for i := 0; i <= hours.total; i++ {
		hour := hours.start + i
		y := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawStringAnchored(
			time.Date(0, 1, 1, hour%24, 0, 0, 0, time.UTC).Format("15:04"),
			leftLabelsWidth/2, y, 0.5, 0.5,
		)

		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.SetLineWidth(0.5)
		dc.Stroke()
		dc.SetColor(hourLabelColor)
	}
}

func drawDays(dc *gg.Context, week weekBounds, dayWidth, gridHeight float64) {
	today := time.Now()

	for day := 0; day < totalDays; day++ {
		date := week.start.AddDate(0, 0, day)
		x := float64(leftLabelsWidth) + float64(day)*dayWidth

		switch {
		case sameDate(date, today):
			dc.SetColor(todayBgColor)
		case day%2 == 0:
			dc.SetColor(evenDayColor)
		default:
			dc.SetColor(oddDayColor)
		}

		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()
	}
}

func drawIntervals(dc *gg.Context, week weekBounds, intervals []model.TimeInterval, hours hourRange, dayWidth, cellHeight float64) {
	for _, interval := range intervals {
		if interval.End.Before(week.start) || !interval.Start.Before(week.end) {
			continue
		}

		day := int(interval.Start.Sub(week.start).Hours() / 24)
		if day < 0 || day >= totalDays {
			continue
		}

		startHour := float64(interval.Start.Hour()) + float64(interval.Start.Minute())/60
		endHour := float64(interval.End.Hour()) + float64(interval.End.Minute())/60
		if !sameDate(interval.Start, interval.End) {
			endHour = float64(hours.end)
		}

		x := float64(leftLabelsWidth) + float64(day)*dayWidth + dayPaddingX
		y := float64(headerHeight) + (startHour-float64(hours.start))*cellHeight
		height := (endHour - startHour) * cellHeight
		if height < minSlotHeight {
			height = minSlotHeight
		}

		dc.SetColor(slotColor)
		dc.DrawRoundedRectangle(x, y, dayWidth-2*dayPaddingX, height, slotRadius)
		dc.Fill()

		dc.SetColor(slotTextColor)
		label := interval.Start.Format("15:04") + "-" + interval.End.Format("15:04")
		dc.DrawStringAnchored(label, x+(dayWidth-2*dayPaddingX)/2, y+height/2, 0.5, 0.5)
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
