package analytics

import (
	"sort"
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// Time-state события, присваивается внешним классификатором
const (
	TimeStateLive     = "LIVE"
	TimeStateSoon     = "SOON"
	TimeStateUpcoming = "UPCOMING"
	TimeStateEnded    = "ENDED"
)

// Приоритет сортировки timeline; неизвестные состояния уходят в конец
var timeStatePriority = map[string]int{
	TimeStateLive:     0,
	TimeStateSoon:     1,
	TimeStateUpcoming: 2,
	TimeStateEnded:    3,
}

const timeStateOtherPriority = 4

// TimeStateClassifier - внешний коллаборатор, присваивающий событию
// четырёхзначный time-state. Точные пороги не являются частью движка.
type TimeStateClassifier interface {
	Classify(event domain.Event, now time.Time) string
}

// timelinePriority возвращает приоритет состояния для сортировки
func timelinePriority(state string) int {
	if p, ok := timeStatePriority[state]; ok {
		return p
	}
	return timeStateOtherPriority
}

// SortTimeline упорядочивает события для показа: сначала по приоритету
// LIVE < SOON < UPCOMING < ENDED < прочее, внутри приоритета по возрастанию
// времени начала. События без разбираемого начала идут последними в своей
// группе и между собой не упорядочиваются (стабильная сортировка).
// Фильтрация здесь не выполняется - только компаратор.
func SortTimeline(events []domain.Event, classifier TimeStateClassifier, now time.Time) []domain.TimelineEntry {
	entries := make([]domain.TimelineEntry, len(events))
	starts := make([]*time.Time, len(events))

	for i, e := range events {
		entries[i] = domain.TimelineEntry{
			Event:     e,
			TimeState: classifier.Classify(e, now),
		}
		starts[i] = StartOf(e)
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]

		pi, pj := timelinePriority(entries[i].TimeState), timelinePriority(entries[j].TimeState)
		if pi != pj {
			return pi < pj
		}

		si, sj := starts[i], starts[j]
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return si.Before(*sj)
		}
	})

	sorted := make([]domain.TimelineEntry, len(entries))
	for pos, i := range order {
		sorted[pos] = entries[i]
	}

	return sorted
}
