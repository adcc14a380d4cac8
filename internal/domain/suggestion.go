package domain

// SuggestionStatus - состояние списка подсказок
type SuggestionStatus string

const (
	SuggestionIdle    SuggestionStatus = "idle"
	SuggestionPending SuggestionStatus = "pending"
	SuggestionReady   SuggestionStatus = "ready"
	SuggestionEmpty   SuggestionStatus = "empty"
	SuggestionError   SuggestionStatus = "error"
)

// Статусы ответа провайдера подсказок
const (
	ProviderStatusOK             = "OK"
	ProviderStatusZeroResults    = "ZERO_RESULTS"
	ProviderStatusRequestDenied  = "REQUEST_DENIED"
	ProviderStatusInvalidRequest = "INVALID_REQUEST"
	ProviderStatusOverQueryLimit = "OVER_QUERY_LIMIT"
	ProviderStatusUnknownError   = "UNKNOWN_ERROR"
)

type Suggestion struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SuggestionSet заменяется целиком при каждом обновлении
type SuggestionSet struct {
	Status SuggestionStatus `json:"status"`
	Items  []Suggestion     `json:"items,omitempty"`
}

// SuggestionResponse - ответ провайдера подсказок
type SuggestionResponse struct {
	Status string       `json:"status"`
	Data   []Suggestion `json:"data"`
}

// ToSet переводит ответ провайдера в состояние списка подсказок
func (r *SuggestionResponse) ToSet() SuggestionSet {
	if r == nil {
		return SuggestionSet{Status: SuggestionError}
	}

	switch r.Status {
	case ProviderStatusOK:
		if len(r.Data) == 0 {
			return SuggestionSet{Status: SuggestionEmpty}
		}
		items := make([]Suggestion, len(r.Data))
		copy(items, r.Data)
		return SuggestionSet{Status: SuggestionReady, Items: items}
	case ProviderStatusZeroResults:
		return SuggestionSet{Status: SuggestionEmpty}
	default:
		return SuggestionSet{Status: SuggestionError}
	}
}

// Cacheable - ответ можно класть в кеш (ошибки провайдера не кешируем)
func (r *SuggestionResponse) Cacheable() bool {
	return r != nil && (r.Status == ProviderStatusOK || r.Status == ProviderStatusZeroResults)
}

// GeocodeResult - кандидат геокодирования; первый в списке считается основным
type GeocodeResult struct {
	Coordinate
	FormattedAddress string  `json:"formatted_address"`
	Relevance        float64 `json:"relevance"`
}
