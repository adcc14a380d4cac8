package utils

import (
	"math"

	"github.com/map-annotator/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0
	metersPerDegree   = earthRadiusMeters * math.Pi / 180.0
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// BoundingBoxAround строит bbox вокруг центра с заданным радиусом в метрах.
// Долгота сжимается по cos(lat); у полюсов и на антимеридиане bbox обрезается до допустимых границ.
func BoundingBoxAround(center domain.Coordinate, radiusMeters float64) domain.BoundingBox {
	dLat := radiusMeters / metersPerDegree

	cosLat := math.Cos(center.Lat * math.Pi / 180.0)
	dLng := 180.0
	if cosLat > 1e-6 {
		dLng = math.Min(radiusMeters/(metersPerDegree*cosLat), 180.0)
	}

	bbox := domain.BoundingBox{
		MinLat: math.Max(center.Lat-dLat, -90),
		MinLng: math.Max(center.Lng-dLng, -180),
		MaxLat: math.Min(center.Lat+dLat, 90),
		MaxLng: math.Min(center.Lng+dLng, 180),
	}
	if dLng >= 180 {
		bbox.MinLng, bbox.MaxLng = -180, 180
	}
	return bbox
}
