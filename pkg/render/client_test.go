package render

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stepsyncdev/stepsync/pkg/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.RenderConfig{BaseURL: baseURL})
}

func TestStage_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "clase.mp4" {
			t.Fatalf("filename = %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "fake video bytes" {
			t.Fatalf("file content = %q", content)
		}
		json.NewEncoder(w).Encode(map[string]string{"filename": "clase.mp4"})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	staged, err := client.Stage(context.Background(), "clase.mp4", strings.NewReader("fake video bytes"))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if staged != "clase.mp4" {
		t.Fatalf("staged filename = %q", staged)
	}
}

func TestStage_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "disk full", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.Stage(context.Background(), "x.mp4", strings.NewReader("data")); err == nil {
		t.Fatal("stage succeeded against a failing service")
	}
}

func TestProcess_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/process" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		want := map[string]string{
			"filename":    "clase.mp4",
			"bpm":         "128",
			"offset":      "1.5",
			"text":        "Clase de Bachata",
			"timed_texts": `[{"id":"a","content":"hola","start":1,"end":2,"position":"top"}]`,
		}
		for field, value := range want {
			if got := r.FormValue(field); got != value {
				t.Errorf("form field %s = %q, want %q", field, got, value)
			}
		}
		json.NewEncoder(w).Encode(map[string]string{"download_url": "/download/processed_clase.mp4"})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	url, err := client.Process(context.Background(), ProcessParams{
		Filename:   "clase.mp4",
		BPM:        128,
		Offset:     1.5,
		Text:       "Clase de Bachata",
		TimedTexts: `[{"id":"a","content":"hola","start":1,"end":2,"position":"top"}]`,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if url != "/download/processed_clase.mp4" {
		t.Fatalf("download url = %q", url)
	}
}

func TestProcess_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "moviepy exploded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Process(context.Background(), ProcessParams{Filename: "x.mp4"})
	if err == nil {
		t.Fatal("process succeeded against a failing service")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestResolveDownloadURL(t *testing.T) {
	client := newTestClient("http://render.local:8000/")

	tests := []struct {
		in   string
		want string
	}{
		{"/download/processed_x.mp4", "http://render.local:8000/download/processed_x.mp4"},
		{"download/processed_x.mp4", "http://render.local:8000/download/processed_x.mp4"},
		{"https://cdn.example.com/x.mp4", "https://cdn.example.com/x.mp4"},
	}
	for _, tc := range tests {
		if got := client.ResolveDownloadURL(tc.in); got != tc.want {
			t.Errorf("ResolveDownloadURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFetchArtifact(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download/processed_clase.mp4" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("processed bytes"))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	body, _, err := client.FetchArtifact(context.Background(), "/download/processed_clase.mp4")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer body.Close()

	content, _ := io.ReadAll(body)
	if string(content) != "processed bytes" {
		t.Fatalf("artifact = %q", content)
	}

	if _, _, err := client.FetchArtifact(context.Background(), "/download/missing.mp4"); err == nil {
		t.Fatal("fetch of missing artifact succeeded")
	}
}
