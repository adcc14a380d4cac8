package repository

import (
	"context"
	"time"

	"github.com/map-annotator/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetSuggestions получает ответ провайдера подсказок из кеша
	GetSuggestions(ctx context.Context, key string) (*domain.SuggestionResponse, error)

	// SetSuggestions сохраняет ответ провайдера подсказок в кеше
	SetSuggestions(ctx context.Context, key string, resp *domain.SuggestionResponse, ttl time.Duration) error
}
