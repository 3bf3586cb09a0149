package analytics

import (
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Пороговые значения классификатора по умолчанию
const (
	defaultSoonWindow    = 2 * time.Hour
	defaultMatchDuration = 3 * time.Hour
)

// DefaultTimeStateClassifier - классификатор time-state по умолчанию.
// Движку достаточно интерфейса TimeStateClassifier; эта реализация
// подключается сервисным слоем, если платформа не передала свою.
type DefaultTimeStateClassifier struct {
	SoonWindow    time.Duration // за сколько до начала событие становится SOON
	MatchDuration time.Duration // длительность при отсутствующем endDate
}

// NewDefaultTimeStateClassifier создает классификатор с порогами по умолчанию
func NewDefaultTimeStateClassifier() *DefaultTimeStateClassifier {
	return &DefaultTimeStateClassifier{
		SoonWindow:    defaultSoonWindow,
		MatchDuration: defaultMatchDuration,
	}
}

// Classify присваивает событию одно из четырёх состояний.
// События без разбираемого начала считаются UPCOMING: в сортировке
// timeline они и так уходят в конец своей группы.
func (c *DefaultTimeStateClassifier) Classify(event domain.Event, now time.Time) string {
	start := StartOf(event)
	if start == nil {
		return TimeStateUpcoming
	}

	end := EndOf(event)
	if end == nil {
		fallback := start.Add(c.MatchDuration)
		end = &fallback
	}

	switch {
	case !now.Before(*end):
		return TimeStateEnded
	case !now.Before(*start):
		return TimeStateLive
	case start.Sub(now) <= c.SoonWindow:
		return TimeStateSoon
	default:
		return TimeStateUpcoming
	}
}
