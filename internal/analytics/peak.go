package analytics

import (
	"fmt"

	"github.com/sportops-analytics/internal/domain"
)

// Пороговая таблица уровня внимания пикового часа.
// Намеренно отличается от таблицы фактора (5/2) - это независимая
// калибровка отдельного сигнала.
const (
	attentionHighMin   = 5
	attentionMediumMin = 3
)

// PeakBucket находит корзину с максимальным количеством событий.
// nil, если корзин нет или все пустые - нормальное состояние тихого дня.
// При равных максимумах выбирается самый ранний час: корзины сканируются
// по возрастанию часа, побеждает первая.
func PeakBucket(buckets []domain.HourlyBucket) *domain.HourlyBucket {
	var peak *domain.HourlyBucket

	for i := range buckets {
		if buckets[i].Count == 0 {
			continue
		}
		if peak == nil || buckets[i].Count > peak.Count {
			peak = &buckets[i]
		}
	}

	if peak == nil {
		return nil
	}

	found := *peak
	return &found
}

// AttentionLevel классифицирует загруженность пикового часа.
// Пустая строка, когда пика нет.
func AttentionLevel(peak *domain.HourlyBucket) string {
	if peak == nil {
		return ""
	}

	switch {
	case peak.Count >= attentionHighMin:
		return domain.AttentionHigh
	case peak.Count >= attentionMediumMin:
		return domain.AttentionMedium
	default:
		return domain.AttentionLow
	}
}

// OperationalSignal строит однострочное сообщение о пиковой активности.
// Пустая строка, когда пика нет.
func OperationalSignal(peak *domain.HourlyBucket) string {
	if peak == nil {
		return ""
	}
	return fmt.Sprintf("Peak activity at %d:00 · %d events", peak.Hour, peak.Count)
}
