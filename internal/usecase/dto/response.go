package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/map-annotator/internal/domain"
)

// ViewportRender - всё, что клиенту нужно для отрисовки карты.
// В состояниях loading/error заполнены только Status и Indicator.
type ViewportRender struct {
	Status    domain.ReadinessState `json:"status"`
	Indicator string                `json:"indicator,omitempty"`
	Title     string                `json:"title,omitempty"`
	View      *domain.ViewCenter    `json:"view,omitempty"`
	Markers   []MarkerPin           `json:"markers,omitempty"`
	Detail    *DetailOverlay        `json:"detail,omitempty"`
}

// MarkerPin - кликабельный пин маркера
type MarkerPin struct {
	ID       uuid.UUID         `json:"id"`
	Seq      uint64            `json:"seq"`
	Position domain.Coordinate `json:"position"`
	Icon     domain.MarkerIcon `json:"icon"`
}

// DetailOverlay - всплывающее окно выбранного маркера
type DetailOverlay struct {
	MarkerID  uuid.UUID         `json:"marker_id"`
	Position  domain.Coordinate `json:"position"`
	Heading   string            `json:"heading"`
	Text      string            `json:"text"`
	PlacedAt  time.Time         `json:"placed_at"`
	PlacedAgo string            `json:"placed_ago"`
}

// SearchState - состояние поиска адреса; строки подсказок только в статусе ready
type SearchState struct {
	Query       string                  `json:"query"`
	Ready       bool                    `json:"ready"`
	Status      domain.SuggestionStatus `json:"status"`
	Suggestions []domain.Suggestion     `json:"suggestions"`
}

// MapConfigResponse - конфигурация для клиентского виджета карты
type MapConfigResponse struct {
	AccessToken string            `json:"access_token"`
	Libraries   []string          `json:"libraries"`
	Center      domain.Coordinate `json:"center"`
	Zoom        int               `json:"zoom"`
	Options     domain.MapOptions `json:"options"`
}
