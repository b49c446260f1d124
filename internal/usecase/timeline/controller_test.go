package timeline

import (
	"reflect"
	"testing"

	"github.com/stepsyncdev/stepsync/internal/domain/entities"
	usecaseErrors "github.com/stepsyncdev/stepsync/internal/usecase/errors"
)

// fakeSurface records every command the controller forwards.
type fakeSurface struct {
	calls []string
	seeks []float64
	rates []float64
}

func (f *fakeSurface) Play()  { f.calls = append(f.calls, "play") }
func (f *fakeSurface) Pause() { f.calls = append(f.calls, "pause") }
func (f *fakeSurface) Seek(t float64) {
	f.calls = append(f.calls, "seek")
	f.seeks = append(f.seeks, t)
}
func (f *fakeSurface) SetRate(r float64) {
	f.calls = append(f.calls, "set_rate")
	f.rates = append(f.rates, r)
}

func testProject() *entities.Project {
	p := entities.NewProject("Clase de Bachata", 120, 1.0, 0)
	p.AddCaption(entities.Caption{ID: "c1", Content: "ready", StartSeconds: 5, EndSeconds: 8, Position: entities.CaptionPositionTop})
	return p
}

func TestController_TransportTransitions(t *testing.T) {
	surface := &fakeSurface{}
	c := NewController(surface)

	if c.Transport() != entities.TransportPaused {
		t.Fatalf("initial transport = %v, want paused", c.Transport())
	}

	c.Play()
	if c.Transport() != entities.TransportPlaying {
		t.Fatalf("after Play transport = %v", c.Transport())
	}
	c.Play() // already playing, must not forward again
	if got := len(surface.calls); got != 1 {
		t.Fatalf("redundant Play forwarded, calls = %v", surface.calls)
	}

	c.Pause()
	if c.Transport() != entities.TransportPaused {
		t.Fatalf("after Pause transport = %v", c.Transport())
	}

	c.Play()
	c.Ended()
	if c.Transport() != entities.TransportPaused {
		t.Fatalf("after Ended transport = %v", c.Transport())
	}
	// Ended is externally signaled; no command goes back to the surface
	if want := []string{"play", "pause", "play"}; !reflect.DeepEqual(surface.calls, want) {
		t.Fatalf("surface calls = %v, want %v", surface.calls, want)
	}
}

func TestController_RestartPreservesTransport(t *testing.T) {
	t.Run("while paused", func(t *testing.T) {
		surface := &fakeSurface{}
		c := NewController(surface)

		c.Restart(12.5)
		if c.Transport() != entities.TransportPaused {
			t.Fatalf("restart changed transport to %v", c.Transport())
		}
		if want := []string{"seek", "pause"}; !reflect.DeepEqual(surface.calls, want) {
			t.Fatalf("surface calls = %v, want %v", surface.calls, want)
		}
		if surface.seeks[0] != 12.5 {
			t.Fatalf("seek target = %v, want 12.5", surface.seeks[0])
		}
	})

	t.Run("while playing", func(t *testing.T) {
		surface := &fakeSurface{}
		c := NewController(surface)
		c.Play()

		c.Restart(3)
		if c.Transport() != entities.TransportPlaying {
			t.Fatalf("restart changed transport to %v", c.Transport())
		}
		if want := []string{"play", "seek", "play"}; !reflect.DeepEqual(surface.calls, want) {
			t.Fatalf("surface calls = %v, want %v", surface.calls, want)
		}
	})
}

func TestController_SetRate(t *testing.T) {
	surface := &fakeSurface{}
	c := NewController(surface)
	c.Play()

	for _, r := range entities.PlaybackRates {
		if err := c.SetRate(r); err != nil {
			t.Fatalf("SetRate(%v) = %v", r, err)
		}
	}
	if c.Rate() != 2 {
		t.Fatalf("rate = %v, want 2", c.Rate())
	}
	// Rate changes leave transport alone
	if c.Transport() != entities.TransportPlaying {
		t.Fatalf("SetRate changed transport to %v", c.Transport())
	}

	if err := c.SetRate(1.75); err != usecaseErrors.ErrInvalidPlaybackRate {
		t.Fatalf("SetRate(1.75) = %v, want ErrInvalidPlaybackRate", err)
	}
	if c.Rate() != 2 {
		t.Fatalf("rejected rate mutated state: %v", c.Rate())
	}
}

func TestController_OnSampleIsIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	c := NewController(surface)
	project := testProject()
	sample := entities.PlaybackSample{CurrentTimeSeconds: 6.0, DurationSeconds: 60}

	first := c.OnSample(sample, project)
	second := c.OnSample(sample, project)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recompute not idempotent: %v vs %v", first, second)
	}
	if first.ActiveBeatLabel == nil {
		t.Fatal("expected an active beat label at t=6.0")
	}
	if len(first.ActiveCaptions) != 1 || first.ActiveCaptions[0].ID != "c1" {
		t.Fatalf("active captions = %v", first.ActiveCaptions)
	}
	if c.LastSample() != sample {
		t.Fatalf("last sample = %v, want %v", c.LastSample(), sample)
	}
}

func TestSnapshot_BeforeOffset(t *testing.T) {
	project := testProject()

	state := Snapshot(0.5, project)
	if state.ActiveBeatLabel != nil {
		t.Fatalf("beat label before offset = %q", *state.ActiveBeatLabel)
	}
	if len(state.ActiveCaptions) != 0 {
		t.Fatalf("captions before their window = %v", state.ActiveCaptions)
	}
}

func TestCommandQueue_DrainOrderAndReset(t *testing.T) {
	q := NewCommandQueue()
	c := NewController(q)

	c.Play()
	c.Restart(7)
	if err := c.SetRate(0.5); err != nil {
		t.Fatalf("SetRate: %v", err)
	}

	got := q.Drain()
	want := []Command{
		{Type: CommandPlay},
		{Type: CommandSeek, Value: 7},
		{Type: CommandPlay},
		{Type: CommandSetRate, Value: 0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("drained = %v, want %v", got, want)
	}

	if again := q.Drain(); len(again) != 0 {
		t.Fatalf("second drain not empty: %v", again)
	}
}
