package domain

// Stream names (должны совпадать с основным backend платформы)
const (
	StreamEventsIngest = "stream:events:ingest"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// EventsIngestNotice - уведомление о записи новых событий в окно.
// DateKeys перечисляет дни (YYYY-MM-DD), чьи сводки затронуты.
type EventsIngestNotice struct {
	DateKeys []string `json:"date_keys"`
	Count    int      `json:"count"`
	Source   string   `json:"source,omitempty"`
}
