package entities

import "fmt"

// TransportState is the play/pause axis of a preview session
type TransportState string

const (
	TransportPaused  TransportState = "paused"
	TransportPlaying TransportState = "playing"
)

// PlaybackRates is the fixed set of rate multipliers the playback surface
// accepts.
var PlaybackRates = []float64{0.25, 0.5, 1, 1.5, 2}

// IsPlaybackRate reports whether the multiplier is in the allowed set.
func IsPlaybackRate(rate float64) bool {
	for _, r := range PlaybackRates {
		if r == rate {
			return true
		}
	}
	return false
}

// PlaybackSample is an ephemeral time reading from the playback surface.
// The surface is authoritative for position; samples are never persisted.
type PlaybackSample struct {
	CurrentTimeSeconds float64 `json:"current_time_seconds"`
	DurationSeconds    float64 `json:"duration_seconds"`
}

// DerivedDisplayState is recomputed from scratch on every sample and has
// no identity of its own. ActiveBeatLabel is nil before the phase offset.
type DerivedDisplayState struct {
	ActiveBeatLabel *string   `json:"active_beat_label"`
	ActiveCaptions  []Caption `json:"active_captions"`
}

// FormatClock renders a time in seconds as mm:ss for display.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
