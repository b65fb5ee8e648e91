package model

import "time"

// TimeInterval — интервал доступности (ISO-8601 на проводе)
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid проверяет что конец строго позже начала
func (i TimeInterval) Valid() bool {
	return i.End.After(i.Start)
}

// NormalizeIntervals нормализует разнородный список интервалов из API.
// Оставляет только записи-словари с парсящимися start/end, порядок сохраняется,
// ничего не объединяется. Кривые записи молча выбрасываются.
func NormalizeIntervals(raw []any) []TimeInterval {
	intervals := make([]TimeInterval, 0, len(raw))

	for _, entry := range raw {
		switch v := entry.(type) {
		case TimeInterval:
			intervals = append(intervals, v)
		case map[string]any:
			start, okStart := parseTimeValue(v["start"])
			end, okEnd := parseTimeValue(v["end"])
			if okStart && okEnd {
				intervals = append(intervals, TimeInterval{Start: start, End: end})
			}
		}
	}

	return intervals
}

// parseTimeValue принимает time.Time или строку в ISO-8601
func parseTimeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		// API иногда отдаёт время без зоны
		if t, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
