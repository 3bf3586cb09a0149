package dto

import "github.com/sportops-analytics/internal/domain"

// SummaryResponse - сводка активности с признаком попадания в кеш
type SummaryResponse struct {
	Summary *domain.Summary `json:"summary"`
	Cached  bool            `json:"cached"`
}

// EventsViewportResponse - страница событий дня в пределах области
type EventsViewportResponse struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// IngestResponse - результат приёма событий
type IngestResponse struct {
	Accepted int      `json:"accepted"`
	Stored   int      `json:"stored"`
	DateKeys []string `json:"dateKeys"`
}
