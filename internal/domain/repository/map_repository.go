package repository

import (
	"context"

	"github.com/map-annotator/internal/domain"
)

// MapSurface - императивный handle живой поверхности карты.
// Захватывается один раз при загрузке, дальше только читается.
type MapSurface interface {
	// PanTo смещает центр карты на координату
	PanTo(coord domain.Coordinate)

	// SetZoom выставляет уровень зума
	SetZoom(level int)
}

// ViewReader отдаёт текущий центр и зум для синхронизации клиента
type ViewReader interface {
	View() domain.ViewCenter
}

// MapLoader - загрузчик скрипта/ключей карты; результат Load - сигнал готовности
type MapLoader interface {
	Load(ctx context.Context) error
}
