package domain

import (
	"time"

	"github.com/google/uuid"
)

// Marker - точка, поставленная пользователем кликом по карте.
// Идентичность - ID (и порядковый Seq); PlacedAt только для отображения.
type Marker struct {
	ID       uuid.UUID  `json:"id"`
	Seq      uint64     `json:"seq"`
	Position Coordinate `json:"position"`
	PlacedAt time.Time  `json:"placed_at"`
}

// MarkerIcon - описание иконки пина
type MarkerIcon struct {
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"origin_x"`
	OriginY int    `json:"origin_y"`
	AnchorX int    `json:"anchor_x"`
	AnchorY int    `json:"anchor_y"`
}

var DefaultMarkerIcon = MarkerIcon{
	URL:     "/restaurant.svg",
	Width:   30,
	Height:  30,
	AnchorX: 15,
	AnchorY: 15,
}
