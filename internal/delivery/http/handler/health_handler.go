package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/config"
	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/pkg/utils"
	"github.com/map-annotator/internal/usecase"
	"github.com/map-annotator/internal/usecase/dto"
)

// HealthChecker - зависимость, которую можно пропинговать
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - liveness и состояние загрузки карты
type HealthHandler struct {
	readiness *usecase.Readiness
	cache     HealthChecker // nil - кеш выключен
	logger    *zap.Logger
}

// NewHealthHandler создаёт новый HealthHandler
func NewHealthHandler(readiness *usecase.Readiness, cache HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		readiness: readiness,
		cache:     cache,
		logger:    logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status": "healthy",
		"map":    h.readiness.State(),
		"time":   time.Now(),
	}
	if err := h.readiness.Err(); err != nil {
		resp["map_error"] = err.Error()
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := h.cache.Health(ctx); err != nil {
			h.logger.Warn("Cache health check failed", zap.Error(err))
			resp["cache"] = "unavailable"
		} else {
			resp["cache"] = "ok"
		}
	}

	return c.JSON(resp)
}

// ConfigHandler отдаёт клиенту параметры виджета карты
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler создаёт новый ConfigHandler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// MapConfig godoc
// @Summary Конфигурация карты
// @Description Access token, библиотеки, начальный центр и зум, опции UI
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Router /api/v1/config/map [get]
func (h *ConfigHandler) MapConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.MapConfigResponse{
		AccessToken: h.cfg.Mapbox.AccessToken,
		Libraries:   h.cfg.Map.Libraries,
		Center: domain.Coordinate{
			Lat: h.cfg.Map.DefaultLat,
			Lng: h.cfg.Map.DefaultLng,
		},
		Zoom:    h.cfg.Map.DefaultZoom,
		Options: domain.DefaultMapOptions,
	}, nil)
}
