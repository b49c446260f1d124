package timeline

import (
	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
)

// PlaybackSurface is the transport the controller drives. It owns decoding
// and the actual clock; the controller only relays commands to it and
// consumes its samples.
type PlaybackSurface interface {
	Play()
	Pause()
	Seek(timeSeconds float64)
	SetRate(multiplier float64)
}

// Controller mediates between a playback surface and the beat/caption
// models. Transport state, position and rate are orthogonal: changing one
// never touches the others. Position is authoritative from the surface;
// the controller never computes time itself.
type Controller struct {
	surface    PlaybackSurface
	transport  entities.TransportState
	rate       float64
	lastSample entities.PlaybackSample
}

// NewController creates a controller in the paused state at rate 1.
func NewController(surface PlaybackSurface) *Controller {
	return &Controller{
		surface:   surface,
		transport: entities.TransportPaused,
		rate:      1,
	}
}

// Transport returns the current transport state.
func (c *Controller) Transport() entities.TransportState {
	return c.transport
}

// Rate returns the current rate multiplier.
func (c *Controller) Rate() float64 {
	return c.rate
}

// LastSample returns the most recently delivered playback sample.
func (c *Controller) LastSample() entities.PlaybackSample {
	return c.lastSample
}

// Play transitions paused -> playing and forwards the command.
func (c *Controller) Play() {
	if c.transport == entities.TransportPlaying {
		return
	}
	c.transport = entities.TransportPlaying
	c.surface.Play()
}

// Pause transitions playing -> paused and forwards the command.
func (c *Controller) Pause() {
	if c.transport == entities.TransportPaused {
		return
	}
	c.transport = entities.TransportPaused
	c.surface.Pause()
}

// Ended is signaled by the surface when playback reaches the end of
// media. The surface has already stopped, so no command is forwarded.
func (c *Controller) Ended() {
	c.transport = entities.TransportPaused
}

// Seek relays a seek command. Transport state is untouched.
func (c *Controller) Seek(timeSeconds float64) {
	c.surface.Seek(timeSeconds)
}

// Restart seeks to the restart bookmark and reasserts the current
// transport state on the surface: it moves playback, it never starts or
// stops it.
func (c *Controller) Restart(restartPointSeconds float64) {
	c.surface.Seek(restartPointSeconds)
	if c.transport == entities.TransportPlaying {
		c.surface.Play()
	} else {
		c.surface.Pause()
	}
}

// SetRate applies a rate multiplier from the fixed allowed set.
func (c *Controller) SetRate(multiplier float64) error {
	if !entities.IsPlaybackRate(multiplier) {
		return usecaseErrors.ErrInvalidPlaybackRate
	}
	c.rate = multiplier
	c.surface.SetRate(multiplier)
	return nil
}

// OnSample records the sample and recomputes the derived display state
// for it. The recompute is stateless: calling it twice with the same
// sample and project yields identical output.
func (c *Controller) OnSample(sample entities.PlaybackSample, project *entities.Project) entities.DerivedDisplayState {
	c.lastSample = sample
	return Snapshot(sample.CurrentTimeSeconds, project)
}

// Snapshot is the pure recompute: playback time plus project config in,
// display state out. It holds no reference to any presentation concern.
func Snapshot(timeSeconds float64, project *entities.Project) entities.DerivedDisplayState {
	state := entities.DerivedDisplayState{
		ActiveCaptions: ActiveCaptionsAt(timeSeconds, project.Captions),
	}
	if label, ok := BeatAt(timeSeconds, project.Tempo); ok {
		state.ActiveBeatLabel = &label
	}
	return state
}
