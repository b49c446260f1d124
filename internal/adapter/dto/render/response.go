package render

import "time"

// RenderJobResponse represents one render attempt in responses
type RenderJobResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Status         string    `json:"status"`
	StagedFilename *string   `json:"staged_filename,omitempty"`
	DownloadURL    *string   `json:"download_url,omitempty"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RenderResponse represents the response after a completed render
type RenderResponse struct {
	Job         *RenderJobResponse `json:"job"`
	DownloadURL string             `json:"download_url"`
	ArchiveURL  string             `json:"archive_url,omitempty"`
}

// RenderHistoryResponse represents a project's render history
type RenderHistoryResponse struct {
	Jobs  []*RenderJobResponse `json:"jobs"`
	Total int                  `json:"total"`
}
