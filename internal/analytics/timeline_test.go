package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
)

// stubClassifier возвращает заранее заданное состояние по ID события
type stubClassifier map[string]string

func (s stubClassifier) Classify(e domain.Event, _ time.Time) string {
	return s[e.ID]
}

func TestSortTimeline_PriorityOrder(t *testing.T) {
	events := []domain.Event{
		{ID: "ended", Date: "2025-03-10T09:00:00Z"},
		{ID: "unknown", Date: "2025-03-10T10:00:00Z"},
		{ID: "upcoming", Date: "2025-03-10T20:00:00Z"},
		{ID: "live", Date: "2025-03-10T12:00:00Z"},
		{ID: "soon", Date: "2025-03-10T14:00:00Z"},
	}
	classifier := stubClassifier{
		"live":     analytics.TimeStateLive,
		"soon":     analytics.TimeStateSoon,
		"upcoming": analytics.TimeStateUpcoming,
		"ended":    analytics.TimeStateEnded,
		"unknown":  "POSTPONED",
	}

	sorted := analytics.SortTimeline(events, classifier, day("2025-03-10"))

	ids := make([]string, len(sorted))
	for i, entry := range sorted {
		ids[i] = entry.ID
	}

	assert.Equal(t, []string{"live", "soon", "upcoming", "ended", "unknown"}, ids)
}

func TestSortTimeline_StartAscendingWithinPriority(t *testing.T) {
	events := []domain.Event{
		{ID: "b", Date: "2025-03-10T15:00:00Z"},
		{ID: "no-start-2"},
		{ID: "a", Date: "2025-03-10T11:00:00Z"},
		{ID: "no-start-1"},
		{ID: "c", Date: "2025-03-10T19:00:00Z"},
	}
	classifier := stubClassifier{
		"a": analytics.TimeStateUpcoming, "b": analytics.TimeStateUpcoming,
		"c": analytics.TimeStateUpcoming, "no-start-1": analytics.TimeStateUpcoming,
		"no-start-2": analytics.TimeStateUpcoming,
	}

	sorted := analytics.SortTimeline(events, classifier, day("2025-03-10"))

	ids := make([]string, len(sorted))
	for i, entry := range sorted {
		ids[i] = entry.ID
	}

	// Без начала - в конец группы; между собой порядок входа (стабильность)
	assert.Equal(t, []string{"a", "b", "c", "no-start-2", "no-start-1"}, ids)
}

func TestSortTimeline_DoesNotFilter(t *testing.T) {
	events := []domain.Event{{ID: "x"}, {ID: "y"}}
	sorted := analytics.SortTimeline(events, stubClassifier{}, time.Now())

	assert.Len(t, sorted, 2)
}

func TestDefaultTimeStateClassifier(t *testing.T) {
	classifier := analytics.NewDefaultTimeStateClassifier()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    domain.Event
		expected string
	}{
		{
			name:     "running event is live",
			event:    domain.Event{Date: "2025-03-10T11:00:00Z", EndDate: "2025-03-10T13:00:00Z"},
			expected: analytics.TimeStateLive,
		},
		{
			name:     "finished event is ended",
			event:    domain.Event{Date: "2025-03-10T08:00:00Z", EndDate: "2025-03-10T10:00:00Z"},
			expected: analytics.TimeStateEnded,
		},
		{
			name:     "no endDate falls back to default duration",
			event:    domain.Event{Date: "2025-03-10T10:00:00Z"},
			expected: analytics.TimeStateLive,
		},
		{
			name:     "starting within two hours is soon",
			event:    domain.Event{Date: "2025-03-10T13:30:00Z"},
			expected: analytics.TimeStateSoon,
		},
		{
			name:     "starting later is upcoming",
			event:    domain.Event{Date: "2025-03-10T20:00:00Z"},
			expected: analytics.TimeStateUpcoming,
		},
		{
			name:     "unparseable start is upcoming",
			event:    domain.Event{ID: "broken"},
			expected: analytics.TimeStateUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.event, now))
		})
	}
}
