package handler

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stepsyncdev/stepsync/errors"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"project not found", usecaseErrors.ErrProjectNotFound, http.StatusNotFound},
		{"session not found", usecaseErrors.ErrSessionNotFound, http.StatusNotFound},
		{"malformed config", fmt.Errorf("%w: bad number", usecaseErrors.ErrMalformedConfig), http.StatusBadRequest},
		{"invalid rate", usecaseErrors.ErrInvalidPlaybackRate, http.StatusBadRequest},
		{"unknown transport", usecaseErrors.ErrInvalidTransportWord, http.StatusBadRequest},
		{"stage failed", errors.ErrRenderStageFailed(stdErrors.New("boom")), http.StatusBadGateway},
		{"process failed", errors.ErrRenderProcessFailed(stdErrors.New("boom")), http.StatusBadGateway},
		{"media missing", errors.ErrMediaMissing("p1"), http.StatusBadRequest},
		{"plain error", stdErrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t)
			if err := HandleError(nil, c, tc.err); err != nil {
				t.Fatalf("HandleError returned %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

// Stage and process failures carry distinct codes in logs but must look
// identical to the caller.
func TestHandleError_RenderFailuresShareSurface(t *testing.T) {
	bodies := make([]map[string]interface{}, 0, 2)
	for _, err := range []error{
		errors.ErrRenderStageFailed(stdErrors.New("upload refused")),
		errors.ErrRenderProcessFailed(stdErrors.New("burn failed")),
	} {
		c, rec := newTestContext(t)
		if herr := HandleError(nil, c, err); herr != nil {
			t.Fatalf("HandleError returned %v", herr)
		}
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status = %d", rec.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		bodies = append(bodies, body)
	}

	if bodies[0]["message"] != "Processing failed" || bodies[1]["message"] != "Processing failed" {
		t.Fatalf("render failure messages = %v / %v", bodies[0]["message"], bodies[1]["message"])
	}
}

func TestHandleSuccess_Envelope(t *testing.T) {
	c, rec := newTestContext(t)
	if err := HandleSuccess(nil, c, map[string]string{"hello": "world"}); err != nil {
		t.Fatalf("HandleSuccess returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "success" || body.Data["hello"] != "world" {
		t.Fatalf("envelope = %+v", body)
	}
}
