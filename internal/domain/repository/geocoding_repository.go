package repository

import (
	"context"

	"github.com/map-annotator/internal/domain"
)

// SuggestionProvider определяет провайдера подсказок адресов
type SuggestionProvider interface {
	// Suggest возвращает подсказки для текста, смещённые к области bias.
	// Ошибки провайдера приходят как статус ответа, error - только транспортные сбои.
	Suggest(ctx context.Context, query string, bias domain.BiasRegion) (*domain.SuggestionResponse, error)
}

// Geocoder определяет сервис прямого геокодирования
type Geocoder interface {
	// Geocode возвращает кандидатов для адреса; первый кандидат - основной
	Geocode(ctx context.Context, address string) ([]domain.GeocodeResult, error)
}
