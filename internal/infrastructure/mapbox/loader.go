package mapbox

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// RequiredLibrary - без places не работают подсказки и геокодирование
const RequiredLibrary = "places"

// Loader - загрузчик карты: проверяет список библиотек и access token
type Loader struct {
	client    *Client
	libraries []string
	logger    *zap.Logger
}

// NewLoader создает новый Loader
func NewLoader(client *Client, libraries []string, logger *zap.Logger) *Loader {
	return &Loader{
		client:    client,
		libraries: libraries,
		logger:    logger,
	}
}

// Load выполняет загрузку; nil означает готовность карты
func (l *Loader) Load(ctx context.Context) error {
	if !slices.Contains(l.libraries, RequiredLibrary) {
		return fmt.Errorf("map libraries %v must include %q", l.libraries, RequiredLibrary)
	}

	if err := l.client.ValidateToken(ctx); err != nil {
		return fmt.Errorf("load map script: %w", err)
	}

	l.logger.Info("Map script loaded", zap.Strings("libraries", l.libraries))
	return nil
}
