package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/map-annotator/internal/domain"
)

// MockSuggestionProvider is a mock of SuggestionProvider
type MockSuggestionProvider struct {
	mock.Mock
}

func (m *MockSuggestionProvider) Suggest(ctx context.Context, query string, bias domain.BiasRegion) (*domain.SuggestionResponse, error) {
	args := m.Called(ctx, query, bias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuggestionResponse), args.Error(1)
}

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) ([]domain.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeocodeResult), args.Error(1)
}

// MockMapSurface is a mock of MapSurface
type MockMapSurface struct {
	mock.Mock
}

func (m *MockMapSurface) PanTo(coord domain.Coordinate) {
	m.Called(coord)
}

func (m *MockMapSurface) SetZoom(level int) {
	m.Called(level)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSuggestions(ctx context.Context, key string) (*domain.SuggestionResponse, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuggestionResponse), args.Error(1)
}

func (m *MockCacheRepository) SetSuggestions(ctx context.Context, key string, resp *domain.SuggestionResponse, ttl time.Duration) error {
	args := m.Called(ctx, key, resp, ttl)
	return args.Error(0)
}
