package session

// TransportRequest represents a transport verb for the session
type TransportRequest struct {
	Action string `json:"action" validate:"required,oneof=play pause ended restart"`
}

// SeekRequest represents a seek to an absolute time
type SeekRequest struct {
	TimeSeconds float64 `json:"time" validate:"min=0"`
}

// RateRequest represents a playback rate change
type RateRequest struct {
	Rate float64 `json:"rate" validate:"required,oneof=0.25 0.5 1 1.5 2"`
}

// SampleRequest carries one playback sample from the client's player
type SampleRequest struct {
	CurrentTimeSeconds float64 `json:"current_time" validate:"min=0"`
	DurationSeconds    float64 `json:"duration" validate:"min=0"`
}
