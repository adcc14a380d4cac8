package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/pkg/errors"
	"github.com/map-annotator/internal/usecase/dto"
)

// PanFunc - возможность сместить карту, которую AddressSearch получает снаружи
type PanFunc func(ctx context.Context, lat, lng float64)

// AddressSearchUseCase - поле поиска адреса, подсказки и переход к выбранному адресу
type AddressSearchUseCase struct {
	provider  repository.SuggestionProvider
	geocoder  repository.Geocoder
	cacheRepo repository.CacheRepository // nil - кеш выключен
	readiness *Readiness
	pan       PanFunc
	bias      domain.BiasRegion
	cacheTTL  time.Duration
	logger    *zap.Logger

	// фоновые запросы подсказок живут дольше HTTP-запроса, который их запустил
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	group  singleflight.Group

	mu          sync.Mutex
	query       string
	suggestions domain.SuggestionSet
	fetchSeq    uint64
	geocodeSeq  uint64
}

// NewAddressSearchUseCase - создание нового AddressSearchUseCase
func NewAddressSearchUseCase(
	provider repository.SuggestionProvider,
	geocoder repository.Geocoder,
	cacheRepo repository.CacheRepository,
	readiness *Readiness,
	pan PanFunc,
	bias domain.BiasRegion,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AddressSearchUseCase {
	ctx, cancel := context.WithCancel(context.Background())

	return &AddressSearchUseCase{
		provider:    provider,
		geocoder:    geocoder,
		cacheRepo:   cacheRepo,
		readiness:   readiness,
		pan:         pan,
		bias:        bias,
		cacheTTL:    cacheTTL,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		suggestions: domain.SuggestionSet{Status: domain.SuggestionIdle},
	}
}

// Ready - поле ввода принимает текст только после загрузки карты
func (uc *AddressSearchUseCase) Ready() bool {
	return uc.readiness.IsReady()
}

// OnInputChange - пользователь меняет текст; запускает асинхронный запрос подсказок
func (uc *AddressSearchUseCase) OnInputChange(text string) error {
	if !uc.Ready() {
		return errors.ErrSearchNotReady
	}

	seq, fetch := uc.setValue(text, true)
	if !fetch {
		return nil
	}

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.fetchSuggestions(seq, text)
	}()

	return nil
}

// OnSuggestionSelect - пользователь выбрал подсказку: текст в поле, геокодирование, pan карты.
// Сбои геокодирования не возвращаются: логируются, вид карты не меняется.
func (uc *AddressSearchUseCase) OnSuggestionSelect(ctx context.Context, suggestion domain.Suggestion) error {
	if !uc.Ready() {
		return errors.ErrSearchNotReady
	}

	uc.setValue(suggestion.Description, false)

	uc.mu.Lock()
	uc.geocodeSeq++
	seq := uc.geocodeSeq
	uc.mu.Unlock()

	results, err := uc.geocoder.Geocode(ctx, suggestion.Description)
	if err != nil {
		uc.logger.Warn("Geocoding failed, map view unchanged",
			zap.String("suggestion_id", suggestion.ID),
			zap.String("address", suggestion.Description),
			zap.Error(err))
		return nil
	}
	if len(results) == 0 {
		uc.logger.Warn("Geocoding returned no results, map view unchanged",
			zap.String("suggestion_id", suggestion.ID),
			zap.String("address", suggestion.Description))
		return nil
	}

	uc.mu.Lock()
	stale := seq != uc.geocodeSeq
	uc.mu.Unlock()
	if stale {
		uc.logger.Debug("Discarding stale geocoding result",
			zap.String("address", suggestion.Description))
		return nil
	}

	first := results[0]
	uc.pan(ctx, first.Lat, first.Lng)

	uc.logger.Info("Map panned to selected address",
		zap.String("address", suggestion.Description),
		zap.Float64("lat", first.Lat),
		zap.Float64("lng", first.Lng))

	return nil
}

// State - снимок состояния поиска для отрисовки
func (uc *AddressSearchUseCase) State() dto.SearchState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state := dto.SearchState{
		Query:       uc.query,
		Ready:       uc.Ready(),
		Status:      uc.suggestions.Status,
		Suggestions: []domain.Suggestion{},
	}
	if uc.suggestions.Status == domain.SuggestionReady {
		state.Suggestions = append(state.Suggestions, uc.suggestions.Items...)
	}
	return state
}

// Wait дожидается завершения фоновых запросов подсказок
func (uc *AddressSearchUseCase) Wait() {
	uc.wg.Wait()
}

// Close отменяет фоновые запросы и дожидается их завершения
func (uc *AddressSearchUseCase) Close() {
	uc.cancel()
	uc.wg.Wait()
}

// setValue меняет текст поля. shouldFetch=false - присваивание только для отображения:
// подсказки очищаются и не запрашиваются. Любой вызов делает устаревшими запросы в полёте.
func (uc *AddressSearchUseCase) setValue(text string, shouldFetch bool) (uint64, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.query = text
	uc.fetchSeq++

	if !shouldFetch || strings.TrimSpace(text) == "" {
		uc.suggestions = domain.SuggestionSet{Status: domain.SuggestionIdle}
		return uc.fetchSeq, false
	}

	uc.suggestions = domain.SuggestionSet{Status: domain.SuggestionPending}
	return uc.fetchSeq, true
}

func (uc *AddressSearchUseCase) fetchSuggestions(seq uint64, text string) {
	resp, err := uc.loadSuggestions(uc.ctx, text)

	var set domain.SuggestionSet
	if err != nil {
		uc.logger.Warn("Suggestion fetch failed",
			zap.String("query", text),
			zap.Error(err))
		set = domain.SuggestionSet{Status: domain.SuggestionError}
	} else {
		set = resp.ToSet()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// более новый запрос уже выпущен: этот ответ не должен его перезаписать
	if seq != uc.fetchSeq {
		uc.logger.Debug("Discarding stale suggestions",
			zap.String("query", text),
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", uc.fetchSeq))
		return
	}

	uc.suggestions = set
}

func (uc *AddressSearchUseCase) loadSuggestions(ctx context.Context, text string) (*domain.SuggestionResponse, error) {
	key := uc.cacheKey(text)

	v, err, shared := uc.group.Do(key, func() (interface{}, error) {
		if cached := uc.cachedSuggestions(ctx, key); cached != nil {
			return cached, nil
		}

		resp, err := uc.provider.Suggest(ctx, text, uc.bias)
		if err != nil {
			return nil, err
		}

		if uc.cacheRepo != nil && resp.Cacheable() {
			if err := uc.cacheRepo.SetSuggestions(ctx, key, resp, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache suggestions", zap.String("key", key), zap.Error(err))
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		uc.logger.Debug("Suggestion fetch shared with in-flight request", zap.String("key", key))
	}

	return v.(*domain.SuggestionResponse), nil
}

func (uc *AddressSearchUseCase) cachedSuggestions(ctx context.Context, key string) *domain.SuggestionResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	cached, err := uc.cacheRepo.GetSuggestions(ctx, key)
	if err != nil {
		uc.logger.Warn("Suggestion cache unavailable, querying provider", zap.Error(err))
		return nil
	}
	return cached
}

func (uc *AddressSearchUseCase) cacheKey(text string) string {
	return fmt.Sprintf("suggest:%.4f:%.4f:%.0f:%s",
		uc.bias.Center.Lat,
		uc.bias.Center.Lng,
		uc.bias.RadiusMeters,
		strings.ToLower(strings.TrimSpace(text)),
	)
}
