package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/errors"
	sessionDTO "github.com/stepsyncdev/stepsync/internal/adapter/dto/session"
	"github.com/stepsyncdev/stepsync/internal/adapter/presenter"
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	"github.com/stepsyncdev/stepsync/internal/usecase/preview"
)

// Session handles preview session HTTP requests. The client owns the
// actual video element; every response carries the transport commands it
// must apply, in order.
type Session struct {
	previewService preview.Service
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(previewService preview.Service, logger *zap.Logger) *Session {
	return &Session{
		previewService: previewService,
		logger:         logger,
	}
}

// OpenSession handles POST /projects/:id/sessions
func (h *Session) OpenSession(c echo.Context) error {
	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	state, err := h.previewService.Open(c.Request().Context(), projectID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(state))
}

// GetSession handles GET /sessions/:id
func (h *Session) GetSession(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	state, err := h.previewService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(state))
}

// Transport handles POST /sessions/:id/transport
func (h *Session) Transport(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req sessionDTO.TransportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	state, err := h.previewService.Transport(c.Request().Context(), id, preview.TransportAction(req.Action))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(state))
}

// Seek handles POST /sessions/:id/seek
func (h *Session) Seek(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req sessionDTO.SeekRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	state, err := h.previewService.Seek(c.Request().Context(), id, req.TimeSeconds)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(state))
}

// SetRate handles POST /sessions/:id/rate
func (h *Session) SetRate(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req sessionDTO.RateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	state, err := h.previewService.SetRate(c.Request().Context(), id, req.Rate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(state))
}

// Sample handles POST /sessions/:id/sample
// The client reports its player position; the response carries the beat
// label and active captions for that instant.
func (h *Session) Sample(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req sessionDTO.SampleRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	result, err := h.previewService.Sample(c.Request().Context(), id, entities.PlaybackSample{
		CurrentTimeSeconds: req.CurrentTimeSeconds,
		DurationSeconds:    req.DurationSeconds,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSampleResponse(result))
}

// CloseSession handles DELETE /sessions/:id
func (h *Session) CloseSession(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.previewService.Close(c.Request().Context(), id)
	return HandleSuccess(h.logger, c, nil)
}
