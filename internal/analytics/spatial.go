package analytics

import (
	"github.com/sportops-analytics/internal/domain"
)

// InBounds проверяет попадание точки в bbox, границы включительно.
// Antimeridian wraparound не обрабатывается - домен продукта одна страна.
func InBounds(p domain.Point, b domain.SpatialBounds) bool {
	return p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

// FilterByBounds применяет пространственный фильтр один раз для всего
// вычисления производных представлений. nil bounds - фильтра нет, события
// без геопривязки остаются. При активном фильтре события без Location
// исключаются.
func FilterByBounds(events []domain.Event, bounds *domain.SpatialBounds) []domain.Event {
	if bounds == nil {
		return events
	}

	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.Location != nil && InBounds(*e.Location, *bounds) {
			result = append(result, e)
		}
	}
	return result
}

// FilterDay оставляет события, чьё начало приходится на активный день.
// События без разбираемого времени начала исключаются.
func FilterDay(events []domain.Event, activeKey string) []domain.Event {
	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		start := StartOf(e)
		if start != nil && DayKey(*start) == activeKey {
			result = append(result, e)
		}
	}
	return result
}

// FilterHour оставляет события активного часа. Час события берётся после
// clamp в рабочее окно [9, 22], чтобы drill-down по корзине возвращал
// ровно те события, что в ней посчитаны.
func FilterHour(events []domain.Event, hour int) []domain.Event {
	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		start := StartOf(e)
		if start != nil && ClampHour(start.Hour()) == hour {
			result = append(result, e)
		}
	}
	return result
}

// FilterEvents строит видимый набор событий для текущего FilterState:
// bounds -> активный день -> опциональный час, каждый фильтр ровно один раз.
func FilterEvents(events []domain.Event, filter domain.FilterState) []domain.Event {
	result := FilterByBounds(events, filter.Bounds)
	result = FilterDay(result, DayKey(filter.ActiveDate))

	if filter.ActiveHour != nil {
		result = FilterHour(result, *filter.ActiveHour)
	}

	return result
}
