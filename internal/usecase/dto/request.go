package dto

// MapClickRequest - клик по поверхности карты
type MapClickRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// SearchInputRequest - новое значение поля поиска адреса
type SearchInputRequest struct {
	Text string `json:"text" validate:"max=256"`
}

// SuggestionSelectRequest - выбранная подсказка
type SuggestionSelectRequest struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description" validate:"required,max=512"`
}
