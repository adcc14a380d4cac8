package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/pkg/errors"
	"github.com/map-annotator/internal/pkg/utils"
	"github.com/map-annotator/internal/usecase/dto"
)

const (
	pageTitle          = "Local Businesses"
	indicatorLoading   = "Loading maps"
	indicatorLoadError = "Error loading maps"
	detailHeading      = "Restaurant Identified!"
)

// ViewportOption - опция MapViewportUseCase
type ViewportOption func(*MapViewportUseCase)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) ViewportOption {
	return func(uc *MapViewportUseCase) {
		uc.now = now
	}
}

// MapViewportUseCase - маркеры, выбранный маркер и pan карты
type MapViewportUseCase struct {
	readiness *Readiness
	surface   SurfaceCell
	icon      domain.MarkerIcon
	now       func() time.Time
	logger    *zap.Logger

	mu       sync.RWMutex
	markers  []domain.Marker
	index    map[uuid.UUID]int
	selected uuid.UUID // uuid.Nil - ничего не выбрано
	nextSeq  uint64
}

// NewMapViewportUseCase - создание нового MapViewportUseCase
func NewMapViewportUseCase(readiness *Readiness, logger *zap.Logger, opts ...ViewportOption) *MapViewportUseCase {
	uc := &MapViewportUseCase{
		readiness: readiness,
		icon:      domain.DefaultMarkerIcon,
		now:       time.Now,
		logger:    logger,
		index:     make(map[uuid.UUID]int),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RenderState - состояние загрузки карты
func (uc *MapViewportUseCase) RenderState() domain.ReadinessState {
	return uc.readiness.State()
}

// OnMapSurfaceClick добавляет маркер в точке клика
func (uc *MapViewportUseCase) OnMapSurfaceClick(lat, lng float64) (*domain.Marker, error) {
	if !uc.readiness.IsReady() {
		return nil, errors.ErrMapNotReady
	}
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	placedAt := uc.now()
	// время только для отображения, но порядок кликов сохраняем и в нём
	if n := len(uc.markers); n > 0 && !placedAt.After(uc.markers[n-1].PlacedAt) {
		placedAt = uc.markers[n-1].PlacedAt.Add(time.Nanosecond)
	}

	uc.nextSeq++
	marker := domain.Marker{
		ID:       uuid.New(),
		Seq:      uc.nextSeq,
		Position: domain.Coordinate{Lat: lat, Lng: lng},
		PlacedAt: placedAt,
	}

	uc.index[marker.ID] = len(uc.markers)
	uc.markers = append(uc.markers, marker)

	uc.logger.Debug("Marker placed",
		zap.String("marker_id", marker.ID.String()),
		zap.Uint64("seq", marker.Seq),
		zap.Float64("lat", lat),
		zap.Float64("lng", lng))

	return &marker, nil
}

// OnMarkerActivate делает маркер выбранным (заменяет предыдущий выбор без промежуточного null)
func (uc *MapViewportUseCase) OnMarkerActivate(id uuid.UUID) error {
	if !uc.readiness.IsReady() {
		return errors.ErrMapNotReady
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.index[id]; !ok {
		return errors.ErrMarkerNotFound
	}
	uc.selected = id

	return nil
}

// OnSelectionDismiss сбрасывает выбор; повторный вызов ничего не меняет
func (uc *MapViewportUseCase) OnSelectionDismiss() {
	uc.mu.Lock()
	uc.selected = uuid.Nil
	uc.mu.Unlock()
}

// Selection возвращает выбранный маркер
func (uc *MapViewportUseCase) Selection() (*domain.Marker, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.selectionLocked()
}

func (uc *MapViewportUseCase) selectionLocked() (*domain.Marker, bool) {
	if uc.selected == uuid.Nil {
		return nil, false
	}
	i, ok := uc.index[uc.selected]
	if !ok {
		return nil, false
	}
	m := uc.markers[i]
	return &m, true
}

// Markers возвращает копию коллекции в порядке установки
func (uc *MapViewportUseCase) Markers() []domain.Marker {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]domain.Marker, len(uc.markers))
	copy(out, uc.markers)
	return out
}

// RegisterViewport захватывает handle поверхности карты. Срабатывает один раз.
func (uc *MapViewportUseCase) RegisterViewport(surface repository.MapSurface) bool {
	ok := uc.surface.Set(surface)
	if ok {
		uc.logger.Info("Map surface registered")
	} else {
		uc.logger.Debug("Map surface already registered, ignoring")
	}
	return ok
}

// PanTo центрирует карту на координате и выставляет зум PanZoom.
// Без захваченного handle ничего не делает.
func (uc *MapViewportUseCase) PanTo(ctx context.Context, lat, lng float64) {
	surface, ok := uc.surface.Get()
	if !ok {
		uc.logger.Warn("PanTo called before map surface registered",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng))
		return
	}

	surface.PanTo(domain.Coordinate{Lat: lat, Lng: lng})
	surface.SetZoom(domain.PanZoom)
}

// Render собирает описание карты; относительное время считается от now
func (uc *MapViewportUseCase) Render(now time.Time) *dto.ViewportRender {
	switch state := uc.readiness.State(); state {
	case domain.ReadinessLoading:
		return &dto.ViewportRender{Status: state, Indicator: indicatorLoading}
	case domain.ReadinessError:
		return &dto.ViewportRender{Status: state, Indicator: indicatorLoadError}
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	render := &dto.ViewportRender{
		Status:  domain.ReadinessReady,
		Title:   pageTitle,
		Markers: make([]dto.MarkerPin, 0, len(uc.markers)),
	}
	for _, m := range uc.markers {
		render.Markers = append(render.Markers, dto.MarkerPin{
			ID:       m.ID,
			Seq:      m.Seq,
			Position: m.Position,
			Icon:     uc.icon,
		})
	}

	if m, ok := uc.selectionLocked(); ok {
		ago := humanize.RelTime(m.PlacedAt, now, "ago", "from now")
		render.Detail = &dto.DetailOverlay{
			MarkerID:  m.ID,
			Position:  m.Position,
			Heading:   detailHeading,
			Text:      "Identified " + ago,
			PlacedAt:  m.PlacedAt,
			PlacedAgo: ago,
		}
	}

	return render
}
