package repository

import (
	"context"
	"time"

	"github.com/sportops-analytics/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix удаляет все ключи с данным префиксом
	DeleteByPrefix(ctx context.Context, prefix string) error

	// GetSummary получает сводку из кеша по ключу фильтра
	GetSummary(ctx context.Context, filter domain.FilterState) (*domain.Summary, error)

	// SetSummary сохраняет сводку в кеше
	SetSummary(ctx context.Context, filter domain.FilterState, summary *domain.Summary, ttl time.Duration) error
}
