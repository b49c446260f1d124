package session

import "github.com/stepsyncdev/stepsync/internal/adapter/dto/project"

// CommandResponse is one transport command the client must apply to its
// video element, in order
type CommandResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value,omitempty"`
}

// SessionResponse represents a preview session in responses
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	ProjectID string            `json:"project_id"`
	Transport string            `json:"transport"`
	Rate      float64           `json:"rate"`
	Commands  []CommandResponse `json:"commands"`
}

// SampleResponse is a session snapshot plus the display state derived
// from the submitted sample
type SampleResponse struct {
	SessionResponse
	ActiveBeat     *string                   `json:"active_beat"`
	ActiveCaptions []project.CaptionResponse `json:"active_captions"`
	Clock          string                    `json:"clock"`
}
