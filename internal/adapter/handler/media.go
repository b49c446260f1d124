package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/errors"
	projectDTO "github.com/stepsyncdev/stepsync/internal/adapter/dto/project"
	"github.com/stepsyncdev/stepsync/internal/adapter/presenter"
	"github.com/stepsyncdev/stepsync/internal/infrastructure/storage"
	projectUsecase "github.com/stepsyncdev/stepsync/internal/usecase/project"
)

const mediaURLExpiry = 1 * time.Hour

// Media handles project media upload and access
type Media struct {
	projectService projectUsecase.Service
	store          *storage.MediaStore
	logger         *zap.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(projectService projectUsecase.Service, store *storage.MediaStore, logger *zap.Logger) *Media {
	return &Media{
		projectService: projectService,
		store:          store,
		logger:         logger,
	}
}

// UploadMedia handles POST /projects/:id/media
// The uploaded video is stored under the project and becomes the source
// for preview and render.
func (h *Media) UploadMedia(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("multipart field 'file' is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := storage.MediaObjectName(id.String(), fileHeader.Filename)
	if err := h.store.Upload(c.Request().Context(), objectName, src, fileHeader.Size, contentType); err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("upload media", err))
	}

	p, err := h.projectService.AttachMedia(c.Request().Context(), id, objectName, fileHeader.Filename)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("media.uploaded",
		zap.String("project_id", id.String()),
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)

	return HandleSuccess(h.logger, c, &projectDTO.MediaUploadResponse{
		Project:  presenter.ToProjectResponse(p, ""),
		Filename: fileHeader.Filename,
	})
}

// GetMediaURL handles GET /projects/:id/media
// Returns a time-limited URL the client player can stream from.
func (h *Media) GetMediaURL(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.projectService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if p.MediaObject == nil {
		return HandleError(h.logger, c, errors.ErrMediaMissing(id.String()))
	}

	url, err := h.store.PresignedURL(c.Request().Context(), *p.MediaObject, mediaURLExpiry)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign media", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, url))
}
