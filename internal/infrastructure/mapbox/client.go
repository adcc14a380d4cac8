package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/map-annotator/internal/config"
	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const placesEndpoint = "geocoding/v5/mapbox.places"

// APIError - ответ Mapbox с не-200 статусом
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mapbox API error: status %d, message: %s", e.StatusCode, e.Message)
}

// Client - клиент Mapbox Geocoding API: провайдер подсказок и геокодер
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	language    string
	limit       int
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		language:    cfg.Language,
		limit:       cfg.Limit,
		limiter:     rate.NewLimiter(limit, burst),
		logger:      logger,
	}
}

// Suggest возвращает подсказки адресов для частично введённого текста
func (c *Client) Suggest(
	ctx context.Context,
	query string,
	bias domain.BiasRegion,
) (*domain.SuggestionResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	params := c.baseParams()
	params.Set("autocomplete", "true")
	params.Set("proximity", formatLngLat(bias.Center))
	if bias.RadiusMeters > 0 {
		bbox := utils.BoundingBoxAround(bias.Center, bias.RadiusMeters)
		params.Set("bbox", fmt.Sprintf("%f,%f,%f,%f", bbox.MinLng, bbox.MinLat, bbox.MaxLng, bbox.MaxLat))
	}

	var resp featureCollection
	err := c.getJSON(ctx, c.placesURL(query, params), &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Провайдер ответил, но отказал: это статус ответа, а не сбой
			return &domain.SuggestionResponse{Status: statusFromHTTP(apiErr.StatusCode)}, nil
		}
		return nil, err
	}

	if len(resp.Features) == 0 {
		return &domain.SuggestionResponse{Status: domain.ProviderStatusZeroResults}, nil
	}

	data := make([]domain.Suggestion, 0, len(resp.Features))
	for _, f := range resp.Features {
		data = append(data, domain.Suggestion{
			ID:          f.ID,
			Description: f.PlaceName,
		})
	}

	c.logger.Debug("Mapbox suggestions received",
		zap.String("query", query),
		zap.Int("count", len(data)))

	return &domain.SuggestionResponse{
		Status: domain.ProviderStatusOK,
		Data:   data,
	}, nil
}

// Geocode выполняет прямое геокодирование адреса
func (c *Client) Geocode(ctx context.Context, address string) ([]domain.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	params := c.baseParams()
	params.Set("autocomplete", "false")

	var resp featureCollection
	if err := c.getJSON(ctx, c.placesURL(address, params), &resp); err != nil {
		return nil, err
	}

	results := make([]domain.GeocodeResult, 0, len(resp.Features))
	for _, f := range resp.Features {
		if len(f.Center) != 2 {
			c.logger.Warn("Mapbox feature without center, skipping", zap.String("id", f.ID))
			continue
		}
		results = append(results, domain.GeocodeResult{
			Coordinate:       domain.Coordinate{Lat: f.Center[1], Lng: f.Center[0]},
			FormattedAddress: f.PlaceName,
			Relevance:        f.Relevance,
		})
	}

	c.logger.Debug("Mapbox geocoding successful",
		zap.String("address", address),
		zap.Int("results", len(results)))

	return results, nil
}

// ValidateToken проверяет access token через Tokens API
func (c *Client) ValidateToken(ctx context.Context) error {
	if c.accessToken == "" {
		return fmt.Errorf("mapbox access token is not configured")
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	endpoint := fmt.Sprintf("%s/tokens/v2?%s", c.baseURL, params.Encode())

	var resp tokenResponse
	err := c.getJSON(ctx, endpoint, &resp)
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return err
		}
		// Tokens API кладёт код в тело и при 401
		_ = json.Unmarshal([]byte(apiErr.Message), &resp)
		if resp.Code == "" {
			return err
		}
	}

	if resp.Code != tokenValid {
		return fmt.Errorf("mapbox token rejected: %s", resp.Code)
	}

	return nil
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	if c.language != "" {
		params.Set("language", c.language)
	}
	if c.limit > 0 {
		params.Set("limit", strconv.Itoa(c.limit))
	}
	return params
}

func (c *Client) placesURL(text string, params url.Values) string {
	return fmt.Sprintf("%s/%s/%s.json?%s",
		c.baseURL,
		placesEndpoint,
		url.PathEscape(text),
		params.Encode(),
	)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	c.logger.Debug("Calling Mapbox API", zap.String("url", redactToken(endpoint)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func statusFromHTTP(code int) string {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ProviderStatusRequestDenied
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return domain.ProviderStatusInvalidRequest
	case http.StatusTooManyRequests:
		return domain.ProviderStatusOverQueryLimit
	default:
		return domain.ProviderStatusUnknownError
	}
}

func formatLngLat(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lng, c.Lat)
}

func redactToken(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
