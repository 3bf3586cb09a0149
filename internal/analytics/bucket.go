package analytics

import (
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Рабочее окно дашборда: почасовые корзины с 9:00 по 22:00 включительно
const (
	BucketFirstHour = 9
	BucketLastHour  = 22
	BucketCount     = BucketLastHour - BucketFirstHour + 1
)

// DayKey строит календарный ключ дня по UTC в формате YYYY-MM-DD.
// Ключ с нулевыми ведущими цифрами: лексикографический порядок строк
// совпадает с хронологическим, на это опирается сортировка исторической
// серии. Исходный ненулевой формат ("2025-3-7") этим свойством не обладал.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ClampHour зажимает час суток в рабочее окно [9, 22].
// Событие в 7 утра попадает в корзину 9, событие в 23:30 - в корзину 22.
// Дашборд показывает полный дневной объём внутри фиксированного окна,
// ценой лёгкого перекоса граничных корзин.
func ClampHour(hour int) int {
	if hour < BucketFirstHour {
		return BucketFirstHour
	}
	if hour > BucketLastHour {
		return BucketLastHour
	}
	return hour
}

// HourlyBuckets распределяет события активного дня по 14 почасовым корзинам.
// Каждое событие с разбираемым временем начала учитывается ровно один раз.
func HourlyBuckets(events []domain.Event, activeKey string) []domain.HourlyBucket {
	buckets := make([]domain.HourlyBucket, BucketCount)
	for i := range buckets {
		buckets[i] = domain.HourlyBucket{Hour: BucketFirstHour + i}
	}

	for _, e := range events {
		start := StartOf(e)
		if start == nil || DayKey(*start) != activeKey {
			continue
		}

		hour := ClampHour(start.Hour())
		buckets[hour-BucketFirstHour].Count++
	}

	return buckets
}
