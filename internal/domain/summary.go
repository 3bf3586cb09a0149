package domain

// Уровни внимания для пикового часа (пороговая таблица 5/3)
const (
	AttentionHigh   = "high"
	AttentionMedium = "medium"
	AttentionLow    = "low"
)

// Уровни факторов активности (пороговая таблица 5/2).
// Таблицы намеренно различаются с уровнями внимания - это независимая
// калибровка двух разных сигналов, не унифицировать.
const (
	FactorHigh   = "high"
	FactorMedium = "medium"
	FactorLow    = "low"
)

// Метки отклонения от базовой линии
const (
	BaselineNormal   = "normal"
	BaselineElevated = "elevated"
	BaselineUnusual  = "unusual"
)

// HourlyBucket - почасовая корзина активного дня, hour in [9, 22]
type HourlyBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DailyCount - количество событий за календарный день исторического окна
type DailyCount struct {
	DateKey string `json:"date_key"`
	Count   int    `json:"count"`
}

// BaselineStats - отклонение активного дня от исторической медианы.
// Median считается по "нижней медиане": элемент floor(n/2)
// отсортированного по возрастанию массива, без усреднения середины.
type BaselineStats struct {
	TodayCount   int    `json:"today_count"`
	Median       int    `json:"median"`
	DeltaPercent int    `json:"delta_percent"`
	AbsoluteDiff int    `json:"absolute_diff"`
	Label        string `json:"label"`
}

// BreakdownEntry - группа разбивки по виду спорта или региону
type BreakdownEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Glyph string `json:"glyph,omitempty"`
}

// FactorEntry - группа разбивки по фактору (competition -> sport -> city)
type FactorEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

// TimelineEntry - событие с вычисленным time-state, упорядоченное для показа
type TimelineEntry struct {
	Event
	TimeState string `json:"timeState"`
}

// Summary - агрегированный выход движка для дашборда ситуационной
// осведомлённости. Все поля пересчитываются вместе при каждом изменении
// FilterState; nil в PeakBucket/AttentionLevel/OperationalSignal/
// BaselineStats - нормальное состояние "нет данных", а не ошибка.
type Summary struct {
	HourlyBuckets     []HourlyBucket   `json:"hourlyBuckets"`
	PeakBucket        *HourlyBucket    `json:"peakBucket"`
	AttentionLevel    *string          `json:"attentionLevel"`
	OperationalSignal *string          `json:"operationalSignal"`
	BaselineStats     *BaselineStats   `json:"baselineStats"`
	SevenDayTrend     []DailyCount     `json:"sevenDayTrend"`
	SportBreakdown    []BreakdownEntry `json:"sportBreakdown"`
	RegionBreakdown   []BreakdownEntry `json:"regionBreakdown"`
	FactorBreakdown   []FactorEntry    `json:"factorBreakdown"`
	TimelineEvents    []TimelineEntry  `json:"timelineEvents"`
}
