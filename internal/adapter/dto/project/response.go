package project

import "time"

// CaptionResponse represents a caption in responses
type CaptionResponse struct {
	ID           string  `json:"id"`
	Content      string  `json:"content"`
	StartSeconds float64 `json:"start"`
	EndSeconds   float64 `json:"end"`
	Position     string  `json:"position"`
}

// ProjectResponse represents a project in responses
type ProjectResponse struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	BPM                 float64           `json:"bpm"`
	OffsetSeconds       float64           `json:"offset"`
	RestartPointSeconds float64           `json:"start_point"`
	MediaFilename       *string           `json:"media_filename,omitempty"`
	MediaURL            string            `json:"media_url,omitempty"`
	Captions            []CaptionResponse `json:"captions"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ProjectListResponse represents a list of projects
type ProjectListResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int                `json:"total"`
}

// ConfigExportResponse carries the config document and the filename the
// client should save it under
type ConfigExportResponse struct {
	Filename string      `json:"filename"`
	Config   interface{} `json:"config"`
}

// MediaUploadResponse represents the response after attaching media
type MediaUploadResponse struct {
	Project  *ProjectResponse `json:"project"`
	Filename string           `json:"filename"`
}
