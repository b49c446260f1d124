package entities

import (
	"testing"
)

func TestProject_CaptionLifecycle(t *testing.T) {
	p := NewProject("demo", 120, 0, 0)

	p.AddCaption(Caption{ID: "a", Content: "uno", StartSeconds: 1, EndSeconds: 2, Position: CaptionPositionTop})
	p.AddCaption(Caption{ID: "b", Content: "dos", StartSeconds: 3, EndSeconds: 4, Position: CaptionPositionBottom})

	if !p.HasCaption("a") || !p.HasCaption("b") {
		t.Fatal("added captions not found")
	}

	content := "uno!"
	start := 1.5
	if !p.UpdateCaption("a", &content, &start, nil, nil) {
		t.Fatal("update of existing caption reported no-op")
	}
	if p.Captions[0].ID != "a" || p.Captions[0].Content != "uno!" || p.Captions[0].StartSeconds != 1.5 {
		t.Fatalf("caption not edited in place: %+v", p.Captions[0])
	}
	if p.Captions[0].EndSeconds != 2 {
		t.Fatalf("nil field was applied: %+v", p.Captions[0])
	}

	if p.UpdateCaption("missing", &content, nil, nil, nil) {
		t.Fatal("update of unknown id reported success")
	}
	if p.DeleteCaption("missing") {
		t.Fatal("delete of unknown id reported success")
	}
	if len(p.Captions) != 2 {
		t.Fatalf("no-op operations mutated the sequence: %d captions", len(p.Captions))
	}

	if !p.DeleteCaption("a") {
		t.Fatal("delete of existing caption reported no-op")
	}
	if len(p.Captions) != 1 || p.Captions[0].ID != "b" {
		t.Fatalf("captions after delete: %+v", p.Captions)
	}
}

func TestProject_ConfigFilename(t *testing.T) {
	p := NewProject("demo", 120, 0, 0)

	if got := p.ConfigFilename(); got != DefaultConfigFilename {
		t.Fatalf("no media: filename = %q, want %q", got, DefaultConfigFilename)
	}

	p.AttachMedia("media/x/clase-basica.mp4", "clase-basica.mp4")
	if got := p.ConfigFilename(); got != "clase-basica.json" {
		t.Fatalf("filename = %q, want clase-basica.json", got)
	}
}

func TestNewProject_Defaults(t *testing.T) {
	p := NewProject("", 0, 0, 0)
	if p.Tempo.BPM != DefaultBPM {
		t.Fatalf("default bpm = %v, want %v", p.Tempo.BPM, DefaultBPM)
	}
	if p.Captions == nil || len(p.Captions) != 0 {
		t.Fatalf("fresh project captions = %v", p.Captions)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{60, "01:00"},
		{83.2, "01:23"},
		{600, "10:00"},
		{-1, "00:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPlaybackRate(t *testing.T) {
	for _, r := range PlaybackRates {
		if !IsPlaybackRate(r) {
			t.Errorf("IsPlaybackRate(%v) = false", r)
		}
	}
	for _, r := range []float64{0, 0.75, 1.25, 3} {
		if IsPlaybackRate(r) {
			t.Errorf("IsPlaybackRate(%v) = true", r)
		}
	}
}
