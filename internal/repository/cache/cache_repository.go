package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
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
	if errors.Is(err, redis.Nil) {
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

// GetSuggestions получает ответ провайдера подсказок из кеша
func (r *cacheRepository) GetSuggestions(ctx context.Context, key string) (*domain.SuggestionResponse, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var resp domain.SuggestionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		r.logger.Error("Failed to unmarshal suggestions from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal suggestions: %w", err)
	}

	return &resp, nil
}

// SetSuggestions сохраняет ответ провайдера подсказок в кеше
func (r *cacheRepository) SetSuggestions(ctx context.Context, key string, resp *domain.SuggestionResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		r.logger.Error("Failed to marshal suggestions", zap.Error(err))
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}
