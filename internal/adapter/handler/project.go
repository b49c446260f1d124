package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/errors"
	projectDTO "github.com/stepsyncdev/stepsync/internal/adapter/dto/project"
	"github.com/stepsyncdev/stepsync/internal/adapter/presenter"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	projectUsecase "github.com/stepsyncdev/stepsync/internal/usecase/project"
)

// Project handles project and caption HTTP requests
type Project struct {
	projectService projectUsecase.Service
	logger         *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService projectUsecase.Service, logger *zap.Logger) *Project {
	return &Project{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject handles POST /projects
// @Summary      Create a new project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        request  body  project.CreateProjectRequest  true  "Project creation request"
// @Router       /projects [post]
func (h *Project) CreateProject(c echo.Context) error {
	var req projectDTO.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	p, err := h.projectService.Create(c.Request().Context(), projectUsecase.CreateProjectInput{
		Title:               req.Title,
		BPM:                 req.BPM,
		OffsetSeconds:       req.OffsetSeconds,
		RestartPointSeconds: req.RestartPointSeconds,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}

// GetProject handles GET /projects/:id
func (h *Project) GetProject(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.projectService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}

// ListProjects handles GET /projects
func (h *Project) ListProjects(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectListResponse(projects))
}

// UpdateProject handles PATCH /projects/:id
func (h *Project) UpdateProject(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req projectDTO.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	p, err := h.projectService.UpdateSettings(c.Request().Context(), id, projectUsecase.UpdateProjectInput{
		Title:               req.Title,
		BPM:                 req.BPM,
		OffsetSeconds:       req.OffsetSeconds,
		RestartPointSeconds: req.RestartPointSeconds,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}

// DeleteProject handles DELETE /projects/:id
func (h *Project) DeleteProject(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, nil)
}

// AddCaption handles POST /projects/:id/captions
func (h *Project) AddCaption(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req projectDTO.CreateCaptionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	caption, err := h.projectService.AddCaption(c.Request().Context(), id, projectUsecase.CaptionInput{
		Content:      req.Content,
		StartSeconds: req.StartSeconds,
		EndSeconds:   req.EndSeconds,
		Position:     entities.CaptionPosition(req.Position),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCaptionResponse(caption))
}

// UpdateCaption handles PATCH /projects/:id/captions/:captionId
func (h *Project) UpdateCaption(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	captionID := c.Param("captionId")

	var req projectDTO.UpdateCaptionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	var position *entities.CaptionPosition
	if req.Position != nil {
		p := entities.CaptionPosition(*req.Position)
		position = &p
	}

	p, err := h.projectService.UpdateCaption(c.Request().Context(), id, captionID, projectUsecase.UpdateCaptionInput{
		Content:      req.Content,
		StartSeconds: req.StartSeconds,
		EndSeconds:   req.EndSeconds,
		Position:     position,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}

// DeleteCaption handles DELETE /projects/:id/captions/:captionId
func (h *Project) DeleteCaption(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.projectService.DeleteCaption(c.Request().Context(), id, c.Param("captionId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProjectResponse(p, ""))
}
