package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stepsyncdev/stepsync/pkg/config"
)

// Client talks to the external Render Service that burns overlays into a
// video file. The protocol is two-phase: stage the media with /upload,
// then request the burn with /process. Neither call is retried; a failed
// attempt is terminal and must be re-initiated by the user.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a render client from config. Pass a nil config to use
// the local default endpoint.
func NewClient(cfg *config.RenderConfig) *Client {
	base := "http://localhost:8000"
	timeout := 10 * time.Minute
	if cfg != nil {
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// StageResponse is the /upload response shape
type StageResponse struct {
	Filename string `json:"filename"`
}

// ProcessResponse is the /process response shape
type ProcessResponse struct {
	DownloadURL string `json:"download_url"`
}

// ProcessParams carries the overlay configuration for one render.
// TimedTexts is the JSON-encoded caption array, pre-serialized by the
// caller in the config document shape.
type ProcessParams struct {
	Filename   string
	BPM        float64
	Offset     float64
	Text       string
	TimedTexts string
}

// Stage uploads the raw media and returns the opaque filename handle the
// service assigns to it.
func (c *Client) Stage(ctx context.Context, filename string, media io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, media); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("render service returned status %d on upload", resp.StatusCode)
	}

	var sr StageResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if sr.Filename == "" {
		return "", fmt.Errorf("upload response missing filename")
	}
	return sr.Filename, nil
}

// Process asks the service to burn the overlays into the staged media and
// returns the download URL of the artifact. Any non-success status is a
// processing failure.
func (c *Client) Process(ctx context.Context, p ProcessParams) (string, error) {
	var body strings.Builder
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"filename":    p.Filename,
		"bpm":         strconv.FormatFloat(p.BPM, 'f', -1, 64),
		"offset":      strconv.FormatFloat(p.Offset, 'f', -1, 64),
		"text":        p.Text,
		"timed_texts": p.TimedTexts,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process", strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("process request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("render service returned status %d on process", resp.StatusCode)
	}

	var prResp ProcessResponse
	if err := json.NewDecoder(resp.Body).Decode(&prResp); err != nil {
		return "", fmt.Errorf("decode process response: %w", err)
	}
	if prResp.DownloadURL == "" {
		return "", fmt.Errorf("process response missing download_url")
	}
	return prResp.DownloadURL, nil
}

// ResolveDownloadURL resolves a service-relative download path against
// the service base origin. Absolute URLs pass through untouched.
func (c *Client) ResolveDownloadURL(downloadURL string) string {
	if strings.HasPrefix(downloadURL, "http://") || strings.HasPrefix(downloadURL, "https://") {
		return downloadURL
	}
	if !strings.HasPrefix(downloadURL, "/") {
		downloadURL = "/" + downloadURL
	}
	return c.baseURL + downloadURL
}

// FetchArtifact downloads the processed file. The caller owns the body.
func (c *Client) FetchArtifact(ctx context.Context, downloadURL string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResolveDownloadURL(downloadURL), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("artifact request: %w", err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("render service returned status %d on download", resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}
