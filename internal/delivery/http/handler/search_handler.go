package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/pkg/errors"
	"github.com/map-annotator/internal/pkg/utils"
	"github.com/map-annotator/internal/pkg/validator"
	"github.com/map-annotator/internal/usecase"
	"github.com/map-annotator/internal/usecase/dto"
)

// SearchHandler - обработчик поля поиска адреса
type SearchHandler struct {
	searchUC *usecase.AddressSearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.AddressSearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// State godoc
// @Summary Состояние поиска адреса
// @Description Текст поля, статус подсказок и строки подсказок (только в статусе ready)
// @Tags Search
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchState}
// @Router /api/v1/search [get]
func (h *SearchHandler) State(c *fiber.Ctx) error {
	state := h.searchUC.State()
	return utils.SendSuccess(c, state, &utils.Meta{Total: len(state.Suggestions)})
}

// InputChange godoc
// @Summary Изменение текста поиска
// @Description Сохраняет текст и асинхронно запрашивает подсказки. Результат читается через GET /api/v1/search.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchInputRequest true "Текст поля"
// @Success 202 {object} utils.SuccessResponse{data=dto.SearchState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/search/query [put]
func (h *SearchHandler) InputChange(c *fiber.Ctx) error {
	var req dto.SearchInputRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.searchUC.OnInputChange(req.Text); err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{Data: h.searchUC.State()})
}

// Select godoc
// @Summary Выбор подсказки
// @Description Подставляет адрес в поле, геокодирует его и смещает карту. Сбой геокодирования не является ошибкой запроса.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SuggestionSelectRequest true "Выбранная подсказка"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/search/select [post]
func (h *SearchHandler) Select(c *fiber.Ctx) error {
	var req dto.SuggestionSelectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	suggestion := domain.Suggestion{ID: req.ID, Description: req.Description}
	if err := h.searchUC.OnSuggestionSelect(c.UserContext(), suggestion); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.searchUC.State(), nil)
}
