package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/pkg/errors"
	"github.com/map-annotator/internal/pkg/utils"
	"github.com/map-annotator/internal/pkg/validator"
	"github.com/map-annotator/internal/usecase"
	"github.com/map-annotator/internal/usecase/dto"
)

// ViewportHandler - обработчик карты: отрисовка, клики, выбор маркера
type ViewportHandler struct {
	viewportUC *usecase.MapViewportUseCase
	view       repository.ViewReader
	now        func() time.Time
	logger     *zap.Logger
}

// NewViewportHandler создаёт новый ViewportHandler
func NewViewportHandler(viewportUC *usecase.MapViewportUseCase, view repository.ViewReader, logger *zap.Logger) *ViewportHandler {
	return &ViewportHandler{
		viewportUC: viewportUC,
		view:       view,
		now:        time.Now,
		logger:     logger,
	}
}

// Render godoc
// @Summary Состояние карты
// @Description Индикатор загрузки, либо центр/зум, маркеры и окно выбранного маркера
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ViewportRender}
// @Router /api/v1/map [get]
func (h *ViewportHandler) Render(c *fiber.Ctx) error {
	render := h.render()
	return utils.SendSuccess(c, render, &utils.Meta{Total: len(render.Markers)})
}

// Click godoc
// @Summary Клик по карте
// @Description Ставит маркер в точке клика. Выбранный маркер не меняется.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.MapClickRequest true "Координаты клика"
// @Success 201 {object} utils.SuccessResponse{data=domain.Marker}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/map/clicks [post]
func (h *ViewportHandler) Click(c *fiber.Ctx) error {
	var req dto.MapClickRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	marker, err := h.viewportUC.OnMapSurfaceClick(*req.Lat, *req.Lng)
	if err != nil {
		return h.sendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: marker})
}

// Activate godoc
// @Summary Выбор маркера
// @Tags Map
// @Produce json
// @Param id path string true "ID маркера"
// @Success 200 {object} utils.SuccessResponse{data=dto.ViewportRender}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/map/markers/{id}/activate [post]
func (h *ViewportHandler) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidMarkerID)
	}

	if err := h.viewportUC.OnMarkerActivate(id); err != nil {
		return h.sendError(c, err)
	}

	return utils.SendSuccess(c, h.render(), nil)
}

// Dismiss godoc
// @Summary Закрыть окно маркера
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ViewportRender}
// @Router /api/v1/map/selection [delete]
func (h *ViewportHandler) Dismiss(c *fiber.Ctx) error {
	h.viewportUC.OnSelectionDismiss()
	return utils.SendSuccess(c, h.render(), nil)
}

func (h *ViewportHandler) render() *dto.ViewportRender {
	render := h.viewportUC.Render(h.now())
	if render.Status == domain.ReadinessReady {
		view := h.view.View()
		render.View = &view
	}
	return render
}

// sendError отличает "ещё грузится" от "загрузка упала"
func (h *ViewportHandler) sendError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errors.ErrMapNotReady) && h.viewportUC.RenderState() == domain.ReadinessError {
		err = errors.ErrMapLoadFailed
	}
	return utils.SendError(c, err)
}
