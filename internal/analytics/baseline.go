package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Параметры расчёта базовой линии
const (
	baselinePastDays = 30

	baselineUnusualMin  = 30 // delta% с которого день "unusual"
	baselineElevatedMin = 15 // delta% с которого день "elevated"

	trendDays = 7
)

// DailyCounts группирует события по календарным дням исторического окна.
// Пространственный фильтр применяется вызывающей стороной до группировки.
// Результат отсортирован по возрастанию ключа; для ISO-ключей это
// одновременно хронологический порядок.
func DailyCounts(events []domain.Event) []domain.DailyCount {
	byKey := make(map[string]int)
	for _, e := range events {
		start := StartOf(e)
		if start == nil {
			continue
		}
		byKey[DayKey(*start)]++
	}

	counts := make([]domain.DailyCount, 0, len(byKey))
	for key, count := range byKey {
		counts = append(counts, domain.DailyCount{DateKey: key, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].DateKey < counts[j].DateKey
	})

	return counts
}

// Baseline сравнивает активный день с исторической медианой.
// nil возвращается при пустой истории или когда других дней кроме
// активного нет - потребитель трактует это как "недостаточно истории".
//
// Медиана - "нижняя": элемент floor(n/2) отсортированного по возрастанию
// массива последних <=30 дней, без усреднения двух средних. Конвенция
// сохраняется точно ради численного паритета с дашбордом.
func Baseline(counts []domain.DailyCount, activeDate time.Time) *domain.BaselineStats {
	if len(counts) == 0 {
		return nil
	}

	activeKey := DayKey(activeDate)

	todayCount := 0
	others := make([]int, 0, len(counts))
	for _, dc := range counts {
		if dc.DateKey == activeKey {
			todayCount = dc.Count
			continue
		}
		others = append(others, dc.Count)
	}

	if len(others) == 0 {
		return nil
	}

	// Последние 30 дней по порядку истории
	if len(others) > baselinePastDays {
		others = others[len(others)-baselinePastDays:]
	}

	past := make([]int, len(others))
	copy(past, others)
	sort.Ints(past)

	median := past[len(past)/2]

	delta := 0
	if median > 0 {
		delta = int(math.Round(float64(todayCount-median) / float64(median) * 100))
	}

	return &domain.BaselineStats{
		TodayCount:   todayCount,
		Median:       median,
		DeltaPercent: delta,
		AbsoluteDiff: todayCount - median,
		Label:        baselineLabel(delta),
	}
}

// baselineLabel классифицирует отклонение по таблице 30/15
func baselineLabel(delta int) string {
	switch {
	case delta >= baselineUnusualMin:
		return domain.BaselineUnusual
	case delta >= baselineElevatedMin:
		return domain.BaselineElevated
	default:
		return domain.BaselineNormal
	}
}

// SevenDayTrend строит серию из ровно 7 дней, хронологически
// заканчивающуюся активным днём. Дни без записей в истории получают 0.
func SevenDayTrend(counts []domain.DailyCount, activeDate time.Time) []domain.DailyCount {
	byKey := make(map[string]int, len(counts))
	for _, dc := range counts {
		byKey[dc.DateKey] = dc.Count
	}

	trend := make([]domain.DailyCount, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := activeDate.UTC().AddDate(0, 0, -i)
		key := DayKey(day)
		trend = append(trend, domain.DailyCount{
			DateKey: key,
			Count:   byKey[key],
		})
	}

	return trend
}
