package mapbox

const tokenValid = "TokenValid"

// featureCollection - ответ Geocoding API (GeoJSON FeatureCollection)
type featureCollection struct {
	Type     string    `json:"type"`
	Query    []any     `json:"query"`
	Features []feature `json:"features"`
}

type feature struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	PlaceType []string  `json:"place_type"`
	Relevance float64   `json:"relevance"`
	Text      string    `json:"text"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"` // [lng, lat]
}

// tokenResponse - ответ Tokens API
type tokenResponse struct {
	Code  string `json:"code"`
	Token struct {
		Usage string `json:"usage"`
		User  string `json:"user"`
	} `json:"token"`
}
