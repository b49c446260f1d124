package handler

import (
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/errors"
	projectDTO "github.com/stepsyncdev/stepsync/internal/adapter/dto/project"
	"github.com/stepsyncdev/stepsync/internal/adapter/presenter"
	projectUsecase "github.com/stepsyncdev/stepsync/internal/usecase/project"
)

// Config handles project config export and import
type Config struct {
	projectService projectUsecase.Service
	logger         *zap.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(projectService projectUsecase.Service, logger *zap.Logger) *Config {
	return &Config{
		projectService: projectService,
		logger:         logger,
	}
}

// ExportConfig handles GET /projects/:id/config
// The document carries every exportable field even when zero, so a
// re-import restores the exact state.
func (h *Config) ExportConfig(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	export, err := h.projectService.ExportConfig(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &projectDTO.ConfigExportResponse{
		Filename: export.Filename,
		Config:   json.RawMessage(export.Blob),
	})
}

// ImportConfig handles PUT /projects/:id/config
// The body is the raw config document. Present fields are applied over
// the current state; a malformed document is rejected wholesale and the
// project is left untouched.
func (h *Config) ImportConfig(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	blob, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	p, err := h.projectService.ImportConfig(c.Request().Context(), id, blob)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}
