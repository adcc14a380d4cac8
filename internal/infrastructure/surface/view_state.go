package surface

import (
	"sync"

	"github.com/map-annotator/internal/domain"
	"go.uber.org/zap"
)

// ViewState - серверная сторона поверхности карты: хранит центр и зум,
// которые клиент применяет к виджету при следующей синхронизации.
type ViewState struct {
	mu     sync.RWMutex
	view   domain.ViewCenter
	logger *zap.Logger
}

// NewViewState создает поверхность с начальным видом
func NewViewState(initial domain.ViewCenter, logger *zap.Logger) *ViewState {
	return &ViewState{
		view:   initial,
		logger: logger,
	}
}

// PanTo смещает центр карты
func (s *ViewState) PanTo(coord domain.Coordinate) {
	s.mu.Lock()
	s.view.Center = coord
	s.mu.Unlock()

	s.logger.Debug("Map panned",
		zap.Float64("lat", coord.Lat),
		zap.Float64("lng", coord.Lng))
}

// SetZoom выставляет зум в пределах [MinZoom, MaxZoom]
func (s *ViewState) SetZoom(level int) {
	level = max(domain.MinZoom, min(level, domain.MaxZoom))

	s.mu.Lock()
	s.view.Zoom = level
	s.mu.Unlock()
}

// View возвращает текущий центр и зум
func (s *ViewState) View() domain.ViewCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}
