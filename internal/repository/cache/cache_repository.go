package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// DeleteByPrefix удаляет все ключи префикса через SCAN, без блокирующего KEYS
func (r *cacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	deleted := 0
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error("Failed to delete key by prefix",
				zap.String("key", iter.Val()), zap.Error(err))
			return fmt.Errorf("cache delete by prefix: %w", err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan error: %w", err)
	}

	r.logger.Debug("Cache keys deleted by prefix",
		zap.String("prefix", prefix), zap.Int("deleted", deleted))
	return nil
}

// GetSummary получает сводку из кеша по каноническому ключу фильтра
func (r *cacheRepository) GetSummary(ctx context.Context, filter domain.FilterState) (*domain.Summary, error) {
	data, err := r.Get(ctx, filter.CacheKey())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		r.logger.Error("Failed to unmarshal summary from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}

	return &summary, nil
}

// SetSummary сохраняет сводку в кеше
func (r *cacheRepository) SetSummary(ctx context.Context, filter domain.FilterState, summary *domain.Summary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		r.logger.Error("Failed to marshal summary", zap.Error(err))
		return fmt.Errorf("marshal summary: %w", err)
	}

	return r.Set(ctx, filter.CacheKey(), data, ttl)
}
