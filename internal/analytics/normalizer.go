package analytics

import (
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Форматы времени, встречающиеся в записях платформы.
// Порядок важен: сначала полный RFC3339, затем усечённые варианты.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseInstant разбирает строку времени, nil если ни один формат не подошёл
func parseInstant(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	return nil
}

// StartOf извлекает канонический момент начала события.
// Поля пробуются в порядке date -> utcDate -> startDate; возвращается
// первое разобранное. nil означает, что событие исключается из всех
// временных агрегаций. Ошибки не поднимаются никогда - отсутствие
// сигнализируется через nil.
func StartOf(e domain.Event) *time.Time {
	for _, field := range []string{e.Date, e.UTCDate, e.StartDate} {
		if t := parseInstant(field); t != nil {
			return t
		}
	}
	return nil
}

// EndOf извлекает момент окончания события, nil если не задан или не разобрался
func EndOf(e domain.Event) *time.Time {
	return parseInstant(e.EndDate)
}
