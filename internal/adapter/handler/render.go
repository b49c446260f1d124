package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/internal/adapter/presenter"
	renderUsecase "github.com/stepsyncdev/stepsync/internal/usecase/render"
)

// Render handles render pipeline HTTP requests
type Render struct {
	renderService renderUsecase.Service
	logger        *zap.Logger
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(renderService renderUsecase.Service, logger *zap.Logger) *Render {
	return &Render{
		renderService: renderService,
		logger:        logger,
	}
}

// StartRender handles POST /projects/:id/render
// The request blocks until the render service finishes or fails. There
// is no retry; a failed attempt is reported once and recorded.
func (h *Render) StartRender(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.renderService.Render(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToRenderResponse(result))
}

// RenderHistory handles GET /projects/:id/renders
func (h *Render) RenderHistory(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	jobs, err := h.renderService.History(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToRenderHistoryResponse(jobs))
}
