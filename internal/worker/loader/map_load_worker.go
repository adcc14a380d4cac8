package loader

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/usecase"
	"github.com/map-annotator/internal/worker"
)

// ViewportRegistrar принимает handle поверхности карты
type ViewportRegistrar interface {
	RegisterViewport(surface repository.MapSurface) bool
}

// MapLoadWorker загружает карту один раз при старте сервиса и фиксирует результат в Readiness
type MapLoadWorker struct {
	*worker.BaseWorker
	loader    repository.MapLoader
	readiness *usecase.Readiness
	viewport  ViewportRegistrar
	surface   repository.MapSurface
	timeout   time.Duration
}

// NewMapLoadWorker создает новый MapLoadWorker
func NewMapLoadWorker(
	loader repository.MapLoader,
	readiness *usecase.Readiness,
	viewport ViewportRegistrar,
	surface repository.MapSurface,
	timeout time.Duration,
	logger *zap.Logger,
) *MapLoadWorker {
	return &MapLoadWorker{
		BaseWorker: worker.NewBaseWorker("map-loader", logger),
		loader:     loader,
		readiness:  readiness,
		viewport:   viewport,
		surface:    surface,
		timeout:    timeout,
	}
}

// Start выполняет загрузку и ждёт остановки
func (w *MapLoadWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.load(ctx); err != nil {
		logger.Error("Map failed to load", zap.Error(err))
	}

	select {
	case <-w.StopChan():
		logger.Info("Worker stopped")
		return nil
	case <-ctx.Done():
		logger.Info("Context cancelled")
		return ctx.Err()
	}
}

func (w *MapLoadWorker) load(ctx context.Context) error {
	logger := w.Logger()

	loadCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	// остановка во время загрузки прерывает её
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-loadCtx.Done():
		}
	}()

	logger.Info("Loading map", zap.Duration("timeout", w.timeout))
	start := time.Now()

	if err := w.loader.Load(loadCtx); err != nil {
		err = fmt.Errorf("map load: %w", err)
		w.readiness.Resolve(err)
		return err
	}

	// handle захватывается до перехода в ready: panTo не должен увидеть готовую карту без поверхности
	w.viewport.RegisterViewport(w.surface)
	w.readiness.Resolve(nil)

	logger.Info("Map ready", zap.Duration("took", time.Since(start)))
	return nil
}
