package domain

import (
	"fmt"
	"time"
)

// SpatialBounds - видимая область карты (axis-aligned bbox).
// Отсутствие bounds означает отсутствие пространственного фильтра.
// Antimeridian не обрабатывается: домен продукта - одна страна.
type SpatialBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// FilterState - единственный изменяемый вход движка аналитики.
// Каждое производное представление - чистая функция от
// (коллекция событий, FilterState).
type FilterState struct {
	ActiveDate time.Time      `json:"active_date"`
	ActiveHour *int           `json:"active_hour,omitempty"`
	Bounds     *SpatialBounds `json:"bounds,omitempty"`
}

// CacheKey возвращает канонический ключ фильтра для мемоизации сводки.
// Одинаковые фильтры обязаны давать одинаковый ключ.
func (f FilterState) CacheKey() string {
	key := "summary:" + f.ActiveDate.UTC().Format("2006-01-02")

	if f.ActiveHour != nil {
		key += fmt.Sprintf(":h%d", *f.ActiveHour)
	} else {
		key += ":h*"
	}

	if f.Bounds != nil {
		key += fmt.Sprintf(":b%.5f,%.5f,%.5f,%.5f",
			f.Bounds.North, f.Bounds.South, f.Bounds.East, f.Bounds.West)
	} else {
		key += ":b*"
	}

	return key
}
