package domain

// Point - географическая точка события
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Event - спортивное событие (матч, сессия), загруженное из внешнего источника.
// Запись неизменяема после загрузки: все производные представления
// пересчитываются заново, сама коллекция никогда не мутируется частично.
//
// Поля времени начала (Date, UTCDate, StartDate) перечислены в порядке
// приоритета разбора; неизвестные поля исходного JSON игнорируются.
type Event struct {
	ID          string `json:"id" db:"id"`
	Date        string `json:"date,omitempty" db:"date"`
	UTCDate     string `json:"utcDate,omitempty" db:"utc_date"`
	StartDate   string `json:"startDate,omitempty" db:"start_date"`
	EndDate     string `json:"endDate,omitempty" db:"end_date"`
	Sport       string `json:"sport,omitempty" db:"sport"`
	Competition string `json:"competition,omitempty" db:"competition"`
	City        string `json:"city,omitempty" db:"city"`
	Region      string `json:"region,omitempty" db:"region"`
	Kind        string `json:"kind,omitempty" db:"kind"`
	Location    *Point `json:"location,omitempty"`
}

// HasLocation проверяет наличие геопривязки у события
func (e *Event) HasLocation() bool {
	return e.Location != nil
}
