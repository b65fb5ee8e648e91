package formatting

import (
	"fmt"
	"strings"
)

// FormatHourlyRate форматирует почасовую ставку
func FormatHourlyRate(rate float64) string {
	if rate <= 0 {
		return "N/A"
	}
	formatted := fmt.Sprintf("%.2f", rate)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	return "$" + formatted
}

// FormatRating форматирует рейтинг учителя по пятибалльной шкале
func FormatRating(rating float64) string {
	if rating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/5", rating)
}

// OrNA возвращает строку либо "N/A" если она пустая
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// JoinOrNA склеивает список через запятую либо "N/A" если он пуст
func JoinOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, ", ")
}
