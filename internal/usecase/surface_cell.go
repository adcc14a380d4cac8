package usecase

import (
	"sync/atomic"

	"github.com/map-annotator/internal/domain/repository"
)

type surfaceBox struct {
	surface repository.MapSurface
}

// SurfaceCell хранит handle поверхности карты: одна запись, дальше только чтение.
type SurfaceCell struct {
	box atomic.Pointer[surfaceBox]
}

// Set записывает handle; повторные вызовы игнорируются и возвращают false
func (c *SurfaceCell) Set(surface repository.MapSurface) bool {
	if surface == nil {
		return false
	}
	return c.box.CompareAndSwap(nil, &surfaceBox{surface: surface})
}

// Get возвращает handle, если он уже захвачен
func (c *SurfaceCell) Get() (repository.MapSurface, bool) {
	b := c.box.Load()
	if b == nil {
		return nil, false
	}
	return b.surface, true
}
