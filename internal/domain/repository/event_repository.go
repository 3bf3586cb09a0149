package repository

import (
	"context"
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// EventRepository - интерфейс загрузчика событий (внешний коллаборатор движка).
// Движок аналитики получает коллекцию целиком и никогда не обновляет её частично.
type EventRepository interface {
	// LoadWindow возвращает все события скользящего исторического окна [from, to)
	LoadWindow(ctx context.Context, from, to time.Time) ([]domain.Event, error)

	// GetByBounds возвращает события дня внутри bbox с пагинацией
	GetByBounds(ctx context.Context, day time.Time, bounds domain.SpatialBounds, limit, offset int) ([]domain.Event, int, error)

	// Insert сохраняет одно событие
	Insert(ctx context.Context, event *domain.Event) error

	// InsertBatch сохраняет пакет событий, возвращает количество записанных
	InsertBatch(ctx context.Context, events []domain.Event) (int, error)
}
