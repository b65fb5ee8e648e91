package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTime форматирует только время
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatInterval форматирует интервал доступности.
// Если конец в тот же день, дата не повторяется.
func FormatInterval(interval model.TimeInterval) string {
	if sameDay(interval.Start, interval.End) {
		return fmt.Sprintf("📅 %s (%s) %s → %s",
			FormatDate(interval.Start),
			interval.Start.Format("Monday"),
			FormatTime(interval.Start),
			FormatTime(interval.End),
		)
	}
	return fmt.Sprintf("📅 %s → %s",
		FormatDateTime(interval.Start),
		FormatDateTime(interval.End),
	)
}

// FormatIntervals форматирует нумерованный список интервалов
func FormatIntervals(intervals []model.TimeInterval) string {
	if len(intervals) == 0 {
		return "No availability set."
	}

	var sb strings.Builder
	for i, interval := range intervals {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, FormatInterval(interval))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
