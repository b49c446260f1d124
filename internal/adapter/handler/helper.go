package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stepsyncdev/stepsync/errors"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// parseUUIDParam reads a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(name + " must be a valid UUID")
	}
	return id, nil
}

// mapUsecaseError lifts use case sentinel errors into AppErrors with the
// right HTTP status. Errors that already are AppErrors pass through.
func mapUsecaseError(err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrProjectNotFound):
		return errors.ErrNotFound("Project")
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		return errors.ErrNotFound("Preview session")
	case stdErrors.Is(err, usecaseErrors.ErrMalformedConfig):
		return errors.ErrConfigMalformed(err)
	case stdErrors.Is(err, usecaseErrors.ErrNoMediaAttached):
		return errors.ErrMediaMissing("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidPlaybackRate):
		return errors.ErrInvalidArgument("playback rate not in the allowed set")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidTransportWord):
		return errors.ErrInvalidArgument("unknown transport action")
	case stdErrors.Is(err, usecaseErrors.ErrStageFailed):
		return errors.ErrRenderStageFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrProcessFailed):
		return errors.ErrRenderProcessFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return err
	}
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	err = mapUsecaseError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}
