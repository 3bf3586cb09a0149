package analytics

import (
	"sync"
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Engine - чистый конвейер аналитики: computeViews(events, filter) -> Summary.
// Никакого скрытого отслеживания зависимостей - вызывающая сторона сама
// дёргает ComputeViews при каждом изменении фильтра и просто отбрасывает
// устаревший результат (last-write-wins). Состояние движка ограничено
// внешними коллабораторами, сам он ничего не мутирует.
type Engine struct {
	classifier TimeStateClassifier
	glyphs     GlyphLookup
}

// NewEngine создает движок с внедрёнными коллабораторами.
// nil заменяются реализациями по умолчанию.
func NewEngine(classifier TimeStateClassifier, glyphs GlyphLookup) *Engine {
	if classifier == nil {
		classifier = NewDefaultTimeStateClassifier()
	}
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}
	return &Engine{
		classifier: classifier,
		glyphs:     glyphs,
	}
}

// ComputeViews вычисляет все производные представления для текущего фильтра.
// Чистая функция от (events, filter, now): повторный вызов на тех же входах
// даёт побитово идентичную сводку.
//
// Пространственный фильтр применяется ровно один раз; независимые
// агрегаторы читают один и тот же неизменяемый отфильтрованный набор и
// считаются параллельно, каждый пишет только своё поле сводки.
func (e *Engine) ComputeViews(events []domain.Event, filter domain.FilterState, now time.Time) *domain.Summary {
	activeKey := DayKey(filter.ActiveDate)

	bounded := FilterByBounds(events, filter.Bounds)
	dayEvents := FilterDay(bounded, activeKey)

	// Видимый набор: корзины строятся по всему дню, разбивки и timeline -
	// по дню с учётом выбранного часа
	viewEvents := dayEvents
	if filter.ActiveHour != nil {
		viewEvents = FilterHour(dayEvents, *filter.ActiveHour)
	}

	summary := &domain.Summary{}

	buckets := HourlyBuckets(bounded, activeKey)
	summary.HourlyBuckets = buckets

	peak := PeakBucket(buckets)
	summary.PeakBucket = peak
	if peak != nil {
		level := AttentionLevel(peak)
		signal := OperationalSignal(peak)
		summary.AttentionLevel = &level
		summary.OperationalSignal = &signal
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		summary.SportBreakdown = SportBreakdown(viewEvents, e.glyphs)
	}()

	go func() {
		defer wg.Done()
		summary.RegionBreakdown = RegionBreakdown(viewEvents)
	}()

	go func() {
		defer wg.Done()
		summary.FactorBreakdown = FactorBreakdown(viewEvents)
	}()

	go func() {
		defer wg.Done()
		counts := DailyCounts(bounded)
		summary.BaselineStats = Baseline(counts, filter.ActiveDate)
		summary.SevenDayTrend = SevenDayTrend(counts, filter.ActiveDate)
	}()

	summary.TimelineEvents = SortTimeline(viewEvents, e.classifier, now)

	wg.Wait()

	return summary
}
