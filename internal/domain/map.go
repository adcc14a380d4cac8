package domain

// Coordinate - географическая координата (WGS84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// ViewCenter - центр и зум видимой области; принадлежит поверхности карты
type ViewCenter struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}

// BiasRegion - область, к которой провайдер подсказок смещает результаты
type BiasRegion struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

const (
	// PanZoom - зум, который выставляется после перехода к найденному адресу
	PanZoom = 14

	MinZoom = 0
	MaxZoom = 22
)

// ReadinessState - состояние загрузки скрипта карты
type ReadinessState string

const (
	ReadinessLoading ReadinessState = "loading"
	ReadinessReady   ReadinessState = "ready"
	ReadinessError   ReadinessState = "error"
)

// MapOptions - опции UI-хрома карты
type MapOptions struct {
	DisableDefaultUI bool `json:"disable_default_ui"`
	ZoomControl      bool `json:"zoom_control"`
}

var DefaultMapOptions = MapOptions{
	DisableDefaultUI: true,
	ZoomControl:      true,
}
